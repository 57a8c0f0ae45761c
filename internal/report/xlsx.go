package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	hoursSheet   = "Work Hours"
	summarySheet = "Summary"
)

// XLSXWriter writes a workbook with a "Work Hours" table and a "Summary" sheet.
type XLSXWriter struct{}

func (XLSXWriter) Write(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hoursSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(hoursSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellStyle(hoursSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, r := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.DateLabel(), r.WeekdayLabel(), r.SessionsLabel(), r.TotalRounded(), r.Comment}
		if err := f.SetSheetRow(hoursSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 12, "B": 12, "C": 36, "D": 12, "E": 24}
	for col, width := range widths {
		if err := f.SetColWidth(hoursSheet, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("adding summary sheet: %w", err)
	}
	for i, line := range summaryLines(s) {
		values := []any{line[0], line[1]}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &values); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 18); err != nil {
		return fmt.Errorf("sizing summary: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}
	return nil
}
