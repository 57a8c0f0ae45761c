package testutil

import (
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// Date returns local midnight of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// At returns a local instant on the given day.
func At(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.Local)
}

// WorkDay options
type DayOption func(*domain.WorkDay)

func WithDayType(t domain.DayType) DayOption {
	return func(d *domain.WorkDay) {
		d.Type = t
	}
}

func WithComment(c string) DayOption {
	return func(d *domain.WorkDay) {
		d.Comment = c
	}
}

// NewTestDay builds an unsaved NORMAL work day.
func NewTestDay(date time.Time, opts ...DayOption) *domain.WorkDay {
	d := &domain.WorkDay{
		Date: domain.DateOnly(date),
		Type: domain.DayNormal,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TimeEntry options
type EntryOption func(*domain.TimeEntry)

func WithBreak(minutes int) EntryOption {
	return func(e *domain.TimeEntry) {
		e.BreakMinutes = minutes
	}
}

// NewTestEntry builds an unsaved entry from "HH:MM" literals with no break.
func NewTestEntry(workDayID, start, end string, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		WorkDayID: workDayID,
		Start:     mustParseClock(start),
		End:       mustParseClock(end),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settings options
type SettingsOption func(*domain.Settings)

func WithWorkDays(days ...time.Weekday) SettingsOption {
	return func(s *domain.Settings) {
		s.WorkDays = domain.WeekdaySet(days...)
	}
}

func WithHoursPerDay(h int) SettingsOption {
	return func(s *domain.Settings) {
		s.WorkHoursPerDay = h
	}
}

func WithDefaultBreak(minutes int) SettingsOption {
	return func(s *domain.Settings) {
		s.BreakMinutes = minutes
	}
}

// NewTestSettings starts from a Monday-to-Friday, 8 hour policy.
func NewTestSettings(opts ...SettingsOption) *domain.Settings {
	s := &domain.Settings{
		WorkDays: domain.WeekdaySet(
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		),
		WorkHoursPerDay:     8,
		BreakMinutes:        30,
		HolidayEveningHours: 4,
		SemiDayOffHours:     4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func mustParseClock(s string) domain.ClockTime {
	c, err := domain.ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}
