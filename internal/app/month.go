package app

import (
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/domain"
)

type MonthSummaryRequest struct {
	Month domain.YearMonth
	Now   *time.Time
}

// CalendarDay is one cell of the Sunday-first month grid.
type CalendarDay struct {
	Date     time.Time
	InMonth  bool
	Future   bool
	Today    bool
	Type     domain.DayType
	Worked   float64
	Expected int
	Entries  int
}

type MonthSummary struct {
	Month       domain.YearMonth
	Days        []domain.DayWithEntries
	Calculation accounting.MonthlyCalculation
	Calendar    []CalendarDay
}

type MonthHistoryEntry struct {
	Month         domain.YearMonth
	TotalWorked   float64
	TotalExpected int
	NetOvertime   float64
	NetMissing    float64
}
