package artifact

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// ReportRow is one export row handed to the assembler. Field order matches
// the client spreadsheet layout.
type ReportRow struct {
	RefNumber     string
	Submitted     string // MM/DD/YYYY
	Headline      string
	Publication   string
	DatePublished string
	State         string
	Text          string
}

// Assembler turns completed report rows into the deliverable bundle:
// spreadsheet + per-article PDFs zipped under the report's bundle name.
type Assembler interface {
	CreateReportBundle(rows []ReportRow, xlsxFilename, zipFilename string) error
}

type fileAssembler struct{ dir string }

func NewFileAssembler(dir string) (Assembler, error) {
	if dir == "" {
		return nil, fmt.Errorf("reports output directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileAssembler{dir: dir}, nil
}

func (a *fileAssembler) CreateReportBundle(rows []ReportRow, xlsxFilename, zipFilename string) error {
	if err := a.writeReportXlsx(rows, xlsxFilename); err != nil {
		return fmt.Errorf("create xlsx: %w", err)
	}
	pdfDir, err := a.writeArticlePDFs(rows)
	if err != nil {
		return fmt.Errorf("create pdfs: %w", err)
	}
	if err := a.writeZip(xlsxFilename, zipFilename, pdfDir); err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	// Staged intermediates are removed only after the zip is fully written.
	if err := os.Remove(filepath.Join(a.dir, xlsxFilename)); err != nil {
		return err
	}
	return os.RemoveAll(pdfDir)
}

func (a *fileAssembler) writeReportXlsx(rows []ReportRow, filename string) error {
	sorted := make([]ReportRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RefNumber < sorted[j].RefNumber })

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Ref #", "Submitted", "Headline", "Publication", "Date", "State", "Text"}
	widths := []float64{15, 15, 40, 30, 15, 10, 80}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}

	for r, row := range sorted {
		values := []string{row.RefNumber, row.Submitted, row.Headline, row.Publication, row.DatePublished, row.State, row.Text}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Vertical: "top", WrapText: false}})
	if err != nil {
		return err
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), len(sorted)+1)
	if err := f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
		return err
	}

	return f.SaveAs(filepath.Join(a.dir, filename))
}

func (a *fileAssembler) writeArticlePDFs(rows []ReportRow) (string, error) {
	pdfDir := filepath.Join(a.dir, "article_pdfs")
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		return "", err
	}

	for _, row := range rows {
		pdf := fpdf.New("P", "mm", "A4", "")
		pdf.SetMargins(18, 18, 18)
		pdf.AddPage()

		fields := []struct{ label, value string }{
			{"Ref #", row.RefNumber},
			{"Submitted", row.Submitted},
			{"Headline", row.Headline},
			{"Publication", row.Publication},
			{"Date", row.DatePublished},
			{"State", row.State},
			{"Text", row.Text},
		}
		for i, fl := range fields {
			if i != 0 {
				pdf.Ln(4)
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Write(5, fl.label+" : ")
			pdf.SetFont("Helvetica", "", 11)
			pdf.Write(5, fl.value)
			pdf.Ln(5)
		}

		if err := pdf.OutputFileAndClose(filepath.Join(pdfDir, row.RefNumber+".pdf")); err != nil {
			return "", err
		}
	}
	return pdfDir, nil
}

func (a *fileAssembler) writeZip(xlsxFilename, zipFilename, pdfDir string) error {
	out, err := os.Create(filepath.Join(a.dir, zipFilename))
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	if err := addFileToZip(zw, filepath.Join(a.dir, xlsxFilename), xlsxFilename); err != nil {
		zw.Close()
		return err
	}

	pdfs, err := os.ReadDir(pdfDir)
	if err != nil {
		zw.Close()
		return err
	}
	for _, entry := range pdfs {
		if entry.IsDir() {
			continue
		}
		// Zip entry names always use forward slashes.
		name := "article_pdfs/" + entry.Name()
		if err := addFileToZip(zw, filepath.Join(pdfDir, entry.Name()), name); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func addFileToZip(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
