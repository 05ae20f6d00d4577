package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	dedsvc "newsnexus/pkg/deduper/service"
)

// CreateDeduperAnalysisXlsx renders the reviewer spreadsheet for a
// checker-table run: one row per candidate followed by one row per surviving
// duplicate (already sorted by score descending). spacerRow inserts a blank
// row between candidate blocks; it changes display only.
func CreateDeduperAnalysisXlsx(dir string, reportID uint, table map[uint]dedsvc.ReportArticleEntry, spacerRow bool) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("reports output directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Deduper"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}

	headers := []string{"Article ID", "Ref #", "Embedding", "Headline", "Publication", "Date", "State", "URL"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", err
		}
	}

	articleIDs := make([]uint, 0, len(table))
	for id := range table {
		articleIDs = append(articleIDs, id)
	}
	sort.Slice(articleIDs, func(i, j int) bool { return articleIDs[i] < articleIDs[j] })

	setRow := func(rowNum int, values []interface{}) error {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	row := 2
	for _, id := range articleIDs {
		entry := table[id]
		candidate := []interface{}{id, entry.ArticleReferenceNumberInReport, entry.MaxEmbedding, "", "", "", "", ""}
		if info := entry.NewArticleInformation; info != nil {
			candidate[3] = info.HeadlineForPdfReport
			candidate[4] = info.PublicationNameForPdfReport
			candidate[5] = info.PublicationDateForPdfReport
			candidate[6] = stateOrEmpty(info.State)
			candidate[7] = info.URLForPdfReport
		}
		if err := setRow(row, candidate); err != nil {
			return "", err
		}
		row++

		for _, dup := range entry.ApprovedArticlesArray {
			values := []interface{}{
				dup.ArticleIDApproved,
				stateOrEmpty(dup.ArticleReportRefIDApproved),
				dup.EmbeddingSearch,
				dup.HeadlineForPdfReport,
				dup.PublicationNameForPdfReport,
				dup.PublicationDateForPdfReport,
				stateOrEmpty(dup.State),
				dup.URLForPdfReport,
			}
			if err := setRow(row, values); err != nil {
				return "", err
			}
			row++
		}
		if spacerRow {
			row++
		}
	}

	filename := fmt.Sprintf("deduper_analysis_report_%d.xlsx", reportID)
	if err := f.SaveAs(filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

func stateOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
