package domain

import (
	"fmt"
	"strings"
)

// DayType classifies a calendar day and drives the expected-hours lookup.
type DayType string

const (
	DayNormal         DayType = "NORMAL"
	DayHoliday        DayType = "HOLIDAY"
	DayHolidayEvening DayType = "HOLIDAY_EVENING"
	DayOff            DayType = "DAY_OFF"
	DaySemiOff        DayType = "SEMI_DAY_OFF"
)

// DayTypes lists every classification in display order.
var DayTypes = []DayType{DayNormal, DayHoliday, DayHolidayEvening, DayOff, DaySemiOff}

var dayTypeAliases = map[string]DayType{
	"normal":          DayNormal,
	"holiday":         DayHoliday,
	"holiday_evening": DayHolidayEvening,
	"holiday-evening": DayHolidayEvening,
	"holiday-eve":     DayHolidayEvening,
	"day_off":         DayOff,
	"day-off":         DayOff,
	"off":             DayOff,
	"semi_day_off":    DaySemiOff,
	"semi-day-off":    DaySemiOff,
	"semi-off":        DaySemiOff,
}

// ParseDayType accepts the stored upper-case names as well as the
// lower-case, dash-separated spellings used on the command line.
func ParseDayType(s string) (DayType, error) {
	if t, ok := dayTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown day type %q (want one of normal, holiday, holiday-eve, day-off, semi-off)", s)
}

// Valid reports whether t is one of the known classifications.
func (t DayType) Valid() bool {
	for _, known := range DayTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Comment returns the short label written into exported reports.
func (t DayType) Comment() string {
	switch t {
	case DayOff:
		return "day-off"
	case DayHolidayEvening:
		return "holiday eve"
	case DayHoliday:
		return "holiday"
	case DaySemiOff:
		return "semi-day off"
	default:
		return ""
	}
}

// Label is the human-readable name used by the CLI.
func (t DayType) Label() string {
	switch t {
	case DayNormal:
		return "Normal"
	case DayHoliday:
		return "Holiday"
	case DayHolidayEvening:
		return "Holiday evening"
	case DayOff:
		return "Day off"
	case DaySemiOff:
		return "Semi day off"
	default:
		return string(t)
	}
}
