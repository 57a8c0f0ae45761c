package domain

import "time"

// DateLayout is the storage and command-line format for calendar dates.
const DateLayout = "2006-01-02"

// WorkDay is a calendar date with its classification. Days without a
// stored row are treated as NORMAL.
type WorkDay struct {
	ID      string
	Date    time.Time
	Type    DayType
	Comment string
}

// TimeEntry is one clocked-in interval within a day. Start and End are
// wall-clock times; End at or before Start means the session crossed midnight.
type TimeEntry struct {
	ID           string
	WorkDayID    string
	Start        ClockTime
	End          ClockTime
	BreakMinutes int
}

// DayWithEntries pairs a day with its sessions in start order.
type DayWithEntries struct {
	Day     WorkDay
	Entries []TimeEntry
}

// TimerState records a running clock-in timer. Date is the work day the
// session is booked on, which may differ from the day StartedAt falls on.
type TimerState struct {
	Date      time.Time
	Started   ClockTime
	StartedAt time.Time
}

// StartInstant is when the timer was started. Timers saved without an
// instant fall back to Started on Date.
func (s TimerState) StartInstant() time.Time {
	if !s.StartedAt.IsZero() {
		return s.StartedAt
	}
	return s.Date.Add(time.Duration(s.Started.Minutes()) * time.Minute)
}

// DateOnly truncates t to local midnight of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseDate parses a YYYY-MM-DD date at local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
