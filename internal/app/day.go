package app

import (
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/domain"
)

// DayDetail is one calendar day as shown by `day show`. Day.ID is empty
// when nothing has been stored for the date yet.
type DayDetail struct {
	Day         domain.WorkDay
	Entries     []domain.TimeEntry
	Calculation accounting.DailyCalculation
	Timer       *domain.TimerState
}

// AddEntryRequest logs a session. A negative BreakMinutes takes the
// configured default break.
type AddEntryRequest struct {
	Date         time.Time
	Start        domain.ClockTime
	End          domain.ClockTime
	BreakMinutes int
}

// NewAddEntryRequest returns a request that uses the default break.
func NewAddEntryRequest(date time.Time, start, end domain.ClockTime) AddEntryRequest {
	return AddEntryRequest{Date: date, Start: start, End: end, BreakMinutes: -1}
}

// EntryUpdate changes only the fields that are set.
type EntryUpdate struct {
	Start        *domain.ClockTime
	End          *domain.ClockTime
	BreakMinutes *int
}

func (u EntryUpdate) Empty() bool {
	return u.Start == nil && u.End == nil && u.BreakMinutes == nil
}

// TimerStatus describes the clock-in timer at a point in time.
type TimerStatus struct {
	Running bool
	Date    time.Time
	Started domain.ClockTime
	Elapsed time.Duration
}
