// Package report renders a month of logged time as a downloadable sheet.
// BuildSheet produces the format-independent rows; a Writer encodes them.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "xlsx" or "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want xlsx or pdf)", s)
}

// ContentType is the MIME type of an encoded report.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Writer encodes a Sheet.
type Writer interface {
	Write(w io.Writer, s Sheet) error
}

// WriterFor returns the Writer for f.
func WriterFor(f Format) (Writer, error) {
	switch f {
	case FormatXLSX:
		return XLSXWriter{}, nil
	case FormatPDF:
		return PDFWriter{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", f)
}

// FileName is the attachment name for a month, e.g. work_hours_2026_9.xlsx.
func FileName(ym domain.YearMonth, f Format) string {
	return fmt.Sprintf("work_hours_%d_%d.%s", ym.Year, int(ym.Month), f)
}

var headers = []string{"Date", "Day of Week", "Start-End", "Total Hours", "Comment"}

// Row is one calendar day of the report.
type Row struct {
	Date     time.Time
	Sessions []string
	Total    float64
	Comment  string
}

func (r Row) DateLabel() string     { return r.Date.Format("02/01/2006") }
func (r Row) WeekdayLabel() string  { return r.Date.Format("Mon") }
func (r Row) SessionsLabel() string { return strings.Join(r.Sessions, ", ") }

// TotalRounded is Total to two decimals, as written to the sheet.
func (r Row) TotalRounded() float64 { return math.Round(r.Total*100) / 100 }

type Sheet struct {
	Month  domain.YearMonth
	Rows   []Row
	Totals accounting.MonthlyCalculation
}

// BuildSheet lays out one row per day of ym up to and including today.
// Totals cover the same rows.
func BuildSheet(ym domain.YearMonth, days []domain.DayWithEntries, settings domain.Settings, today time.Time) Sheet {
	byDate := make(map[string]domain.DayWithEntries, len(days))
	for _, d := range days {
		byDate[d.Day.Date.Format(domain.DateLayout)] = d
	}

	sheet := Sheet{Month: ym}
	for _, date := range accounting.DaysInMonth(ym) {
		if date.After(today) {
			break
		}
		row := Row{Date: date}
		if d, ok := byDate[date.Format(domain.DateLayout)]; ok {
			for _, e := range d.Entries {
				row.Sessions = append(row.Sessions, e.Start.String()+"-"+e.End.String())
				row.Total += accounting.NetHours(e)
			}
			row.Comment = comment(d.Day)
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	sheet.Totals = accounting.CalculateMonthly(accounting.UpToDate(days, today), settings)
	return sheet
}

func comment(d domain.WorkDay) string {
	label := d.Type.Comment()
	switch {
	case label == "":
		return d.Comment
	case d.Comment == "":
		return label
	}
	return label + " - " + d.Comment
}

// summaryLines are the label/value pairs printed under the table.
func summaryLines(s Sheet) [][2]string {
	t := s.Totals
	return [][2]string{
		{"Month", s.Month.Title()},
		{"Total worked", accounting.FormatHours(t.TotalWorked)},
		{"Total expected", fmt.Sprintf("%dh", t.TotalExpected)},
		{"Net overtime", accounting.FormatHours(t.NetOvertime)},
		{"Net missing", accounting.FormatHours(t.NetMissing)},
	}
}
