package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of a wall-clock day in minutes.
const MinutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day with minute precision, stored as
// minutes since midnight. It carries no date and no zone.
type ClockTime int

// NewClockTime builds a ClockTime from hour and minute components.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}
	return ClockTime(hour*60 + minute), nil
}

// MustClock is NewClockTime for literals known to be valid.
func MustClock(hour, minute int) ClockTime {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf truncates t to the minute and returns its wall-clock part.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// ParseClockTime parses "HH:MM" (or "H:MM").
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	return NewClockTime(h, m)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// Minutes returns the number of minutes since midnight.
func (c ClockTime) Minutes() int { return int(c) }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// After reports whether c is strictly later in the day than o.
func (c ClockTime) After(o ClockTime) bool { return c > o }
