package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumnWidths = []float64{26, 24, 70, 24, 46}

// PDFWriter renders the sheet as a single A4 table followed by the totals.
type PDFWriter struct{}

func (PDFWriter) Write(w io.Writer, s Sheet) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Work Hours - "+s.Month.Title()))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(217, 217, 217)
	for i, h := range headers {
		pdf.CellFormat(pdfColumnWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range s.Rows {
		cells := []string{
			r.DateLabel(),
			r.WeekdayLabel(),
			r.SessionsLabel(),
			fmt.Sprintf("%.2f", r.TotalRounded()),
			tr(r.Comment),
		}
		for i, c := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	for _, line := range summaryLines(s) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(40, 6, line[0])
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, line[1])
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("encoding pdf: %w", err)
	}
	return nil
}
