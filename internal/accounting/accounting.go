// Package accounting turns clocked sessions, day classifications and the
// user's policy into worked, expected, overtime and missing hours.
//
// Every function here is pure: inputs are values, nothing is cached, and the
// results depend only on the arguments, so callers may share them freely
// across goroutines.
package accounting

import (
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// DailyCalculation is the accounting result for one day. At most one of
// Overtime and Missing is non-zero.
type DailyCalculation struct {
	TotalWorked float64
	Expected    int
	Overtime    float64
	Missing     float64
}

// MonthlyCalculation aggregates daily results. NetOvertime and NetMissing
// come from TotalOvertime - TotalMissing, split by sign.
type MonthlyCalculation struct {
	TotalWorked   float64
	TotalExpected int
	TotalOvertime float64
	TotalMissing  float64
	NetOvertime   float64
	NetMissing    float64
}

// NetHours returns the worked hours of a single session after deducting its
// break. A session whose end is not after its start is taken to run past
// midnight, so start == end counts as a full 24 hours. The result is not
// rounded and may be negative when the break exceeds the session.
func NetHours(e domain.TimeEntry) float64 {
	var minutes int
	if e.End.After(e.Start) {
		minutes = e.End.Minutes() - e.Start.Minutes()
	} else {
		minutes = (domain.MinutesPerDay - e.Start.Minutes()) + e.End.Minutes()
	}
	return float64(minutes-e.BreakMinutes) / 60.0
}

// ExpectedHours returns the hours the policy expects on date for a day of
// the given type. NORMAL days outside the configured work days expect zero.
func ExpectedHours(t domain.DayType, date time.Time, s domain.Settings) int {
	switch t {
	case domain.DayHoliday, domain.DayOff:
		return 0
	case domain.DayHolidayEvening:
		return s.HolidayEveningHours
	case domain.DaySemiOff:
		return s.SemiDayOffHours
	default:
		if s.IsWorkDay(date.Weekday()) {
			return s.WorkHoursPerDay
		}
		return 0
	}
}

// CalculateDaily sums the day's sessions and compares them with the
// expected hours for its classification.
func CalculateDaily(day domain.WorkDay, entries []domain.TimeEntry, s domain.Settings) DailyCalculation {
	var worked float64
	for _, e := range entries {
		worked += NetHours(e)
	}
	expected := ExpectedHours(day.Type, day.Date, s)

	calc := DailyCalculation{TotalWorked: worked, Expected: expected}
	diff := worked - float64(expected)
	switch {
	case diff > 0:
		calc.Overtime = diff
	case diff < 0:
		calc.Missing = -diff
	}
	return calc
}

// CalculateMonthly aggregates the given days. The caller decides which days
// belong in the period; no date filtering happens here.
func CalculateMonthly(days []domain.DayWithEntries, s domain.Settings) MonthlyCalculation {
	var m MonthlyCalculation
	for _, d := range days {
		daily := CalculateDaily(d.Day, d.Entries, s)
		m.TotalWorked += daily.TotalWorked
		m.TotalExpected += daily.Expected
		m.TotalOvertime += daily.Overtime
		m.TotalMissing += daily.Missing
	}

	net := m.TotalOvertime - m.TotalMissing
	switch {
	case net > 0:
		m.NetOvertime = net
	case net < 0:
		m.NetMissing = -net
	}
	return m
}
