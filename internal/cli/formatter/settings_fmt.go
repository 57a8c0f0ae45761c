package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workclock/internal/domain"
)

// FormatSettings renders the accounting policy.
func FormatSettings(s *domain.Settings) string {
	days := s.SortedWorkDays()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	workDays := strings.Join(names, ", ")
	if workDays == "" {
		workDays = Dim("none")
	}

	return RenderBox("Settings", RenderPairs([][2]string{
		{"Work days", workDays},
		{"Hours per day", fmt.Sprintf("%dh", s.WorkHoursPerDay)},
		{"Default break", FormatMinutes(s.BreakMinutes)},
		{"Holiday evening", fmt.Sprintf("%dh", s.HolidayEveningHours)},
		{"Semi day off", fmt.Sprintf("%dh", s.SemiDayOffHours)},
	}))
}
