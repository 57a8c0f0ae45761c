package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
)

const cellWidth = 5

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// dayMarker is the single character drawn after the day number.
func dayMarker(c app.CalendarDay) string {
	if m := DayTypeMarker(c.Type); m != "" {
		return m
	}
	if c.Entries > 0 {
		return "•"
	}
	return " "
}

// cellStyle colors a day by how its worked hours compare to the target.
func cellStyle(c app.CalendarDay) func(...string) string {
	switch {
	case c.Future:
		return StyleDim.Render
	case c.Today:
		return StyleHeader.Render
	case c.Type != domain.DayNormal:
		return DayTypeStyle(c.Type).Render
	case c.Expected == 0 && c.Worked == 0:
		return StyleDim.Render
	case c.Worked >= float64(c.Expected):
		return StyleGreen.Render
	case c.Worked > 0:
		return StyleYellow.Render
	default:
		return StyleRed.Render
	}
}

// FormatCalendar renders the Sunday-first month grid.
func FormatCalendar(cells []app.CalendarDay) string {
	var b strings.Builder
	for i, h := range weekdayHeader {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%-*s", cellWidth-1, h)))
		if i < len(weekdayHeader)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for i, c := range cells {
		cell := strings.Repeat(" ", cellWidth-1)
		if c.InMonth {
			cell = cellStyle(c)(fmt.Sprintf("%2d%s ", c.Date.Day(), dayMarker(c)))
		}
		b.WriteString(cell)
		if i%7 == 6 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString(Dim("• logged  H holiday  E holiday eve  O day off  S semi day off") + "\n")
	return b.String()
}

// FormatMonthSummary renders the calendar and the month's totals.
func FormatMonthSummary(s *app.MonthSummary) string {
	var b strings.Builder
	b.WriteString(FormatCalendar(s.Calendar))
	b.WriteString("\n")

	c := s.Calculation
	b.WriteString(RenderPairs([][2]string{
		{"Worked", Hours(c.TotalWorked)},
		{"Expected", fmt.Sprintf("%dh", c.TotalExpected)},
		{"Overtime", accounting.FormatHours(c.TotalOvertime)},
		{"Missing", accounting.FormatHours(c.TotalMissing)},
		{"Balance", Balance(c.NetOvertime, c.NetMissing)},
		{"Progress", RenderProgress(c.TotalWorked, float64(c.TotalExpected), 20)},
	}))

	return RenderBox(s.Month.Title(), b.String())
}

// FormatHistory renders one line per month with data, newest first.
func FormatHistory(entries []app.MonthHistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No history yet.") + "\n"
	}
	headers := []string{"MONTH", "WORKED", "EXPECTED", "BALANCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Month.Title(),
			Hours(e.TotalWorked),
			fmt.Sprintf("%dh", e.TotalExpected),
			Balance(e.NetOvertime, e.NetMissing),
		})
	}
	return RenderBox("History", RenderTable(headers, rows, 1, 2, 3))
}
