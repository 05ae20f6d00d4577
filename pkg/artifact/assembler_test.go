package artifact

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	dedsvc "newsnexus/pkg/deduper/service"
)

func testRows() []ReportRow {
	return []ReportRow{
		{RefNumber: "260101002", Submitted: "01/01/2026", Headline: "second", Publication: "Probe", DatePublished: "2025-12-30", State: "CA", Text: "body two"},
		{RefNumber: "260101001", Submitted: "01/01/2026", Headline: "first", Publication: "Probe", DatePublished: "2025-12-29", State: "NV", Text: "body one"},
	}
}

func TestCreateReportBundle(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileAssembler(dir)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	if err := a.CreateReportBundle(testRows(), "cr260101.xlsx", "report_bundle_1.zip"); err != nil {
		t.Fatalf("create bundle: %v", err)
	}

	zr, err := zip.OpenReader(filepath.Join(dir, "report_bundle_1.zip"))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"cr260101.xlsx",
		"article_pdfs/260101001.pdf",
		"article_pdfs/260101002.pdf",
	} {
		if !names[want] {
			t.Errorf("zip missing %s (has %v)", want, names)
		}
	}

	// Staged intermediates are cleaned up after bundling.
	if _, err := os.Stat(filepath.Join(dir, "cr260101.xlsx")); !os.IsNotExist(err) {
		t.Error("xlsx should be removed after bundling")
	}
	if _, err := os.Stat(filepath.Join(dir, "article_pdfs")); !os.IsNotExist(err) {
		t.Error("pdf staging dir should be removed after bundling")
	}
}

func TestNewFileAssemblerRequiresDir(t *testing.T) {
	if _, err := NewFileAssembler(""); err == nil {
		t.Fatal("expected configuration error for empty dir")
	}
}

func TestCreateDeduperAnalysisXlsx(t *testing.T) {
	dir := t.TempDir()
	state := "CA"
	table := map[uint]dedsvc.ReportArticleEntry{
		101: {
			MaxEmbedding:                   0.92,
			ArticleReferenceNumberInReport: "260101001",
			NewArticleInformation: &dedsvc.NewArticleInformation{
				ApprovedArticleInfo:   dedsvc.ApprovedArticleInfo{HeadlineForPdfReport: "candidate", State: &state},
				ArticleReportRefIDNew: "260101001",
			},
			ApprovedArticlesArray: []dedsvc.DuplicateCandidate{
				{ArticleIDApproved: 501, EmbeddingSearch: 0.92},
			},
		},
	}

	filename, err := CreateDeduperAnalysisXlsx(dir, 42, table, true)
	if err != nil {
		t.Fatalf("create deduper xlsx: %v", err)
	}
	if filename != "deduper_analysis_report_42.xlsx" {
		t.Errorf("unexpected filename %s", filename)
	}
	if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
		t.Errorf("xlsx not written: %v", err)
	}
}

func TestCreateDeduperAnalysisXlsxRequiresDir(t *testing.T) {
	if _, err := CreateDeduperAnalysisXlsx("", 1, nil, false); err == nil {
		t.Fatal("expected configuration error for empty dir")
	}
}
