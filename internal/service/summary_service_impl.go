package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
)

var _ app.MonthSummaryUseCase = (*summaryService)(nil)

type summaryService struct {
	days     repository.WorkDayRepo
	settings SettingsService
}

func NewSummaryService(days repository.WorkDayRepo, settings SettingsService) SummaryService {
	return &summaryService{days: days, settings: settings}
}

// Month totals the stored days of req.Month up to today. Months after the
// current one are rejected.
func (s *summaryService) Month(ctx context.Context, req app.MonthSummaryRequest) (*app.MonthSummary, error) {
	now := app.ResolveNow(req.Now)
	if req.Month.After(domain.YearMonthOf(now)) {
		return nil, fmt.Errorf("%s: %w", req.Month, ErrFutureMonth)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	days, err := s.days.ListForMonth(ctx, req.Month)
	if err != nil {
		return nil, err
	}
	days = accounting.UpToDate(days, now)

	return &app.MonthSummary{
		Month:       req.Month,
		Days:        days,
		Calculation: accounting.CalculateMonthly(days, *settings),
		Calendar:    buildCalendar(req.Month, days, *settings, now),
	}, nil
}

// History totals every month with data, newest first. Unlike Month it
// applies no today filter.
func (s *summaryService) History(ctx context.Context) ([]app.MonthHistoryEntry, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	months, err := s.days.MonthsWithData(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]app.MonthHistoryEntry, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		days, err := s.days.ListForMonth(ctx, months[i])
		if err != nil {
			return nil, err
		}
		calc := accounting.CalculateMonthly(days, *settings)
		history = append(history, app.MonthHistoryEntry{
			Month:         months[i],
			TotalWorked:   calc.TotalWorked,
			TotalExpected: calc.TotalExpected,
			NetOvertime:   calc.NetOvertime,
			NetMissing:    calc.NetMissing,
		})
	}
	return history, nil
}

func buildCalendar(ym domain.YearMonth, days []domain.DayWithEntries, settings domain.Settings, now time.Time) []app.CalendarDay {
	byDate := make(map[string]domain.DayWithEntries, len(days))
	for _, d := range days {
		byDate[d.Day.Date.Format(domain.DateLayout)] = d
	}

	grid := accounting.CalendarDays(ym)
	cells := make([]app.CalendarDay, 0, len(grid))
	for _, date := range grid {
		cell := app.CalendarDay{
			Date:    date,
			InMonth: date.Month() == ym.Month,
			Future:  date.After(now),
			Today:   domain.SameDate(date, now),
			Type:    domain.DayNormal,
		}
		if !cell.InMonth {
			cells = append(cells, cell)
			continue
		}

		day, stored := byDate[date.Format(domain.DateLayout)]
		if stored {
			cell.Type = day.Day.Type
			cell.Entries = len(day.Entries)
			cell.Worked = accounting.CalculateDaily(day.Day, day.Entries, settings).TotalWorked
		}
		cell.Expected = accounting.ExpectedHours(cell.Type, date, settings)
		cells = append(cells, cell)
	}
	return cells
}
