package accounting

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// FormatHours renders hours as "8h" or "8h 30m", truncating to whole minutes.
func FormatHours(hours float64) string {
	whole := int(hours)
	minutes := int((hours - float64(whole)) * 60)
	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", whole, minutes)
	}
	return fmt.Sprintf("%dh", whole)
}

// DaysInMonth returns every date of ym at local midnight.
func DaysInMonth(ym domain.YearMonth) []time.Time {
	first := ym.First()
	last := ym.Last()
	days := make([]time.Time, 0, 31)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// CalendarDays returns the dates of a Sunday-first month grid: the month's
// days padded with the tail of the previous month and the head of the next
// so the grid covers whole weeks.
func CalendarDays(ym domain.YearMonth) []time.Time {
	first := ym.First()
	last := ym.Last()
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	days := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// UpToDate keeps the days dated on or before today, preserving order.
func UpToDate(days []domain.DayWithEntries, today time.Time) []domain.DayWithEntries {
	cutoff := domain.DateOnly(today)
	out := make([]domain.DayWithEntries, 0, len(days))
	for _, d := range days {
		if domain.DateOnly(d.Day.Date).After(cutoff) {
			continue
		}
		out = append(out, d)
	}
	return out
}
