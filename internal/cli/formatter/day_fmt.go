package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
)

// FormatDayDetail renders one day: its classification, sessions and balance.
func FormatDayDetail(d *app.DayDetail, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(d.Day.Date.Format("Mon, Jan 2 2006")), DayTypeBadge(d.Day.Type))
	if d.Day.Comment != "" {
		fmt.Fprintf(&b, "%s\n", Dim(d.Day.Comment))
	}
	b.WriteString("\n")

	if len(d.Entries) == 0 {
		b.WriteString(Dim("No sessions logged.") + "\n")
	} else {
		headers := []string{"ID", "START", "END", "BREAK", "NET"}
		rows := make([][]string, 0, len(d.Entries))
		for _, e := range d.Entries {
			end := e.End.String()
			if !e.End.After(e.Start) {
				end += Dim(" +1d")
			}
			rows = append(rows, []string{
				TruncID(e.ID),
				e.Start.String(),
				end,
				FormatMinutes(e.BreakMinutes),
				Hours(accounting.NetHours(e)),
			})
		}
		b.WriteString(RenderTable(headers, rows, 4))
	}
	b.WriteString("\n")

	c := d.Calculation
	b.WriteString(RenderPairs([][2]string{
		{"Worked", Hours(c.TotalWorked)},
		{"Expected", fmt.Sprintf("%dh", c.Expected)},
		{"Balance", Balance(c.Overtime, c.Missing)},
	}))

	if d.Timer != nil {
		b.WriteString("\n" + FormatTimer(&app.TimerStatus{
			Running: true,
			Date:    d.Timer.Date,
			Started: d.Timer.Started,
			Elapsed: now.Sub(d.Timer.StartInstant()),
		}, now))
	}

	return RenderBox("Day", b.String())
}

// FormatTimer renders the clock-in timer state on one line.
func FormatTimer(s *app.TimerStatus, now time.Time) string {
	if s == nil || !s.Running {
		return Dim("Timer stopped.") + "\n"
	}
	elapsed := s.Elapsed.Truncate(time.Minute)
	return fmt.Sprintf("%s since %s %s (%s)\n",
		StyleGreen.Render("● Timer running"),
		s.Started,
		Dim(HumanDateFrom(s.Date, now)),
		accounting.FormatHours(elapsed.Hours()),
	)
}
