package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Settings is the user-editable accounting policy. A single row exists per
// database; DefaultSettings is used until the user saves their own.
type Settings struct {
	WorkDays            map[time.Weekday]bool
	WorkHoursPerDay     int
	BreakMinutes        int
	HolidayEveningHours int
	SemiDayOffHours     int
}

// DefaultSettings returns the policy used before the user configures one:
// Sunday through Thursday, 9 hours a day, 30 minute break.
func DefaultSettings() Settings {
	return Settings{
		WorkDays: WeekdaySet(
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		),
		WorkHoursPerDay:     9,
		BreakMinutes:        30,
		HolidayEveningHours: 6,
		SemiDayOffHours:     4,
	}
}

// WeekdaySet builds a work-day set from the given weekdays.
func WeekdaySet(days ...time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// IsWorkDay reports whether d is a designated work day.
func (s Settings) IsWorkDay(d time.Weekday) bool {
	return s.WorkDays[d]
}

// SortedWorkDays returns the work days ordered Sunday first.
func (s Settings) SortedWorkDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(s.WorkDays))
	for d, on := range s.WorkDays {
		if on {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Validate checks the non-negativity and weekday-range invariants.
func (s Settings) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"work hours per day", s.WorkHoursPerDay},
		{"break minutes", s.BreakMinutes},
		{"holiday evening hours", s.HolidayEveningHours},
		{"semi day-off hours", s.SemiDayOffHours},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", f.name, f.value)
		}
	}
	if s.WorkHoursPerDay > 24 || s.HolidayEveningHours > 24 || s.SemiDayOffHours > 24 {
		return fmt.Errorf("expected hours cannot exceed 24 per day")
	}
	for d := range s.WorkDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid weekday %d", d)
		}
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts full or three-letter English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseWeekdayList parses a comma-separated list such as "sun,mon,tue".
// An empty string yields an empty set.
func ParseWeekdayList(s string) (map[time.Weekday]bool, error) {
	set := map[time.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		set[d] = true
	}
	return set, nil
}

// FormatWeekdayList renders a set as upper-case full names, Sunday first.
func FormatWeekdayList(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strings.ToUpper(d.String())
	}
	return strings.Join(names, ",")
}
