package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func octoberCalendar() []app.CalendarDay {
	ym := domain.YearMonth{Year: 2026, Month: time.October}
	var cells []app.CalendarDay
	for _, d := range accounting.CalendarDays(ym) {
		c := app.CalendarDay{Date: d, InMonth: d.Month() == time.October, Type: domain.DayNormal}
		switch d.Day() {
		case 5:
			c.Entries = 1
			c.Worked = 8
		case 6:
			c.Type = domain.DayHoliday
		}
		cells = append(cells, c)
	}
	return cells
}

func TestFormatCalendar_Grid(t *testing.T) {
	out := stripANSI(FormatCalendar(octoberCalendar()))
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "Sun"))
	// October 2026 starts on a Thursday: four blank cells lead the first week.
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", 4*cellWidth)+" 1"))
	assert.Contains(t, out, " 5•")
	assert.Contains(t, out, " 6H")
	assert.Contains(t, out, "31")
	assert.Contains(t, out, "H holiday")
}

func TestFormatMonthSummary(t *testing.T) {
	s := &app.MonthSummary{
		Month:    domain.YearMonth{Year: 2026, Month: time.October},
		Calendar: octoberCalendar(),
		Calculation: accounting.MonthlyCalculation{
			TotalWorked:   20.5,
			TotalExpected: 24,
			TotalMissing:  3.5,
			NetMissing:    3.5,
		},
	}

	out := stripANSI(FormatMonthSummary(s))
	assert.Contains(t, out, "OCTOBER 2026")
	assert.Contains(t, out, "20h 30m")
	assert.Contains(t, out, "24h")
	assert.Contains(t, out, "-3h 30m")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, stripANSI(FormatHistory(nil)), "No history")

	out := stripANSI(FormatHistory([]app.MonthHistoryEntry{
		{Month: domain.YearMonth{Year: 2026, Month: time.September}, TotalWorked: 170, TotalExpected: 168, NetOvertime: 2},
		{Month: domain.YearMonth{Year: 2026, Month: time.August}, TotalWorked: 100, TotalExpected: 160, NetMissing: 60},
	}))
	assert.Contains(t, out, "September 2026")
	assert.Contains(t, out, "+2h")
	assert.Contains(t, out, "-60h")
	assert.Less(t, strings.Index(out, "September"), strings.Index(out, "August"))
}

func TestFormatDayDetail(t *testing.T) {
	date := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)
	d := &app.DayDetail{
		Day: domain.WorkDay{Date: date, Type: domain.DayNormal, Comment: "dentist"},
		Entries: []domain.TimeEntry{
			{ID: "entry-0001-xyz", Start: domain.MustClock(9, 0), End: domain.MustClock(17, 30), BreakMinutes: 30},
			{ID: "entry-0002-xyz", Start: domain.MustClock(22, 0), End: domain.MustClock(1, 0)},
		},
		Calculation: accounting.DailyCalculation{TotalWorked: 11, Expected: 8, Overtime: 3},
		Timer:       &domain.TimerState{Date: date, Started: domain.MustClock(18, 0)},
	}

	out := stripANSI(FormatDayDetail(d, date.Add(19*time.Hour)))
	assert.Contains(t, out, "Mon, Oct 19 2026")
	assert.Contains(t, out, "Normal")
	assert.Contains(t, out, "dentist")
	assert.Contains(t, out, "entry-00")
	assert.NotContains(t, out, "entry-0001")
	assert.Contains(t, out, "01:00 +1d")
	assert.Contains(t, out, "+3h")
	assert.Contains(t, out, "Timer running since 18:00")
	assert.Contains(t, out, "(1h)")
}

func TestFormatTimer_Stopped(t *testing.T) {
	assert.Contains(t, stripANSI(FormatTimer(&app.TimerStatus{}, time.Now())), "Timer stopped")
	assert.Contains(t, stripANSI(FormatTimer(nil, time.Now())), "Timer stopped")
}

func TestFormatSettings(t *testing.T) {
	s := domain.DefaultSettings()
	out := stripANSI(FormatSettings(&s))
	assert.Contains(t, out, "Sun, Mon, Tue, Wed, Thu")
	assert.Contains(t, out, "9h")
	assert.Contains(t, out, "30m")
}

func TestFormatEmailConfig_HidesTokens(t *testing.T) {
	c := &domain.EmailConfig{
		Recipients:      []string{"boss@example.com"},
		AutoSendEnabled: true,
		AccessToken:     "secret-access",
		RefreshToken:    "secret-refresh",
		LastAutoSent:    domain.YearMonth{Year: 2026, Month: time.September},
	}
	out := stripANSI(FormatEmailConfig(c, "gmail"))
	assert.Contains(t, out, "boss@example.com")
	assert.Contains(t, out, "last sent September 2026")
	assert.Contains(t, out, "gmail")
	assert.NotContains(t, out, "secret")
}
