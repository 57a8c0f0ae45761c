package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: use YYYY-MM", s)
	}
	return YearMonthOf(t), nil
}

// First returns local midnight of the first day of the month.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.Local)
}

// Last returns local midnight of the last day of the month.
func (ym YearMonth) Last() time.Time {
	return ym.First().AddDate(0, 1, -1)
}

func (ym YearMonth) Prev() YearMonth { return YearMonthOf(ym.First().AddDate(0, -1, 0)) }
func (ym YearMonth) Next() YearMonth { return YearMonthOf(ym.First().AddDate(0, 1, 0)) }

// After reports whether ym is strictly later than o.
func (ym YearMonth) After(o YearMonth) bool {
	if ym.Year != o.Year {
		return ym.Year > o.Year
	}
	return ym.Month > o.Month
}

// String renders "YYYY-MM".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Title renders "September 2026".
func (ym YearMonth) Title() string {
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}
