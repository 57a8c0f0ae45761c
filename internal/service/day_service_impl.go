package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
)

var _ app.LogTimeUseCase = (*dayService)(nil)

type dayService struct {
	days     repository.WorkDayRepo
	entries  repository.TimeEntryRepo
	timer    repository.TimerRepo
	settings SettingsService
	uow      db.UnitOfWork
}

func NewDayService(
	days repository.WorkDayRepo,
	entries repository.TimeEntryRepo,
	timer repository.TimerRepo,
	settings SettingsService,
	uow db.UnitOfWork,
) DayService {
	return &dayService{
		days:     days,
		entries:  entries,
		timer:    timer,
		settings: settings,
		uow:      uow,
	}
}

// Detail never creates a row: an unknown date is shown as an empty NORMAL day.
func (s *dayService) Detail(ctx context.Context, date time.Time) (*app.DayDetail, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	detail := &app.DayDetail{
		Day: domain.WorkDay{Date: domain.DateOnly(date), Type: domain.DayNormal},
	}
	day, err := s.days.GetByDate(ctx, date)
	switch {
	case err == nil:
		detail.Day = *day
		if detail.Entries, err = s.entries.ListByWorkDay(ctx, day.ID); err != nil {
			return nil, err
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	detail.Calculation = accounting.CalculateDaily(detail.Day, detail.Entries, *settings)

	timer, err := s.timer.Get(ctx)
	switch {
	case err == nil:
		if domain.SameDate(timer.Date, date) {
			detail.Timer = timer
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	return detail, nil
}

func (s *dayService) SetDayType(ctx context.Context, date time.Time, t domain.DayType, comment *string) (*domain.WorkDay, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown day type %q", t)
	}

	var day *domain.WorkDay
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDays := repository.NewSQLiteWorkDayRepo(tx)

		var err error
		day, err = dayOrNew(ctx, txDays, date)
		if err != nil {
			return err
		}
		day.Type = t
		if comment != nil {
			day.Comment = *comment
		}
		return txDays.Upsert(ctx, day)
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (s *dayService) AddEntry(ctx context.Context, req app.AddEntryRequest) (*domain.TimeEntry, error) {
	breakMinutes := req.BreakMinutes
	if breakMinutes < 0 {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		breakMinutes = settings.BreakMinutes
	}

	entry := &domain.TimeEntry{Start: req.Start, End: req.End, BreakMinutes: breakMinutes}
	if err := s.recordEntry(ctx, req.Date, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// recordEntry stores entry under date, creating a NORMAL day when none exists.
func (s *dayService) recordEntry(ctx context.Context, date time.Time, entry *domain.TimeEntry) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDays := repository.NewSQLiteWorkDayRepo(tx)
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		day, err := dayOrNew(ctx, txDays, date)
		if err != nil {
			return err
		}
		if day.ID == "" {
			if err := txDays.Upsert(ctx, day); err != nil {
				return err
			}
		}
		entry.WorkDayID = day.ID
		return txEntries.Create(ctx, entry)
	})
}

func (s *dayService) UpdateEntry(ctx context.Context, id string, upd app.EntryUpdate) (*domain.TimeEntry, error) {
	if upd.BreakMinutes != nil && *upd.BreakMinutes < 0 {
		return nil, fmt.Errorf("break minutes must be non-negative, got %d", *upd.BreakMinutes)
	}

	var entry *domain.TimeEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		var err error
		entry, err = txEntries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if upd.Start != nil {
			entry.Start = *upd.Start
		}
		if upd.End != nil {
			entry.End = *upd.End
		}
		if upd.BreakMinutes != nil {
			entry.BreakMinutes = *upd.BreakMinutes
		}
		return txEntries.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *dayService) DeleteEntry(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *dayService) StartTimer(ctx context.Context, date, now time.Time) (*domain.TimerState, error) {
	state := domain.TimerState{
		Date:      domain.DateOnly(date),
		Started:   domain.ClockOf(now),
		StartedAt: now.Truncate(time.Second),
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimer := repository.NewSQLiteTimerRepo(tx)

		_, err := txTimer.Get(ctx)
		if err == nil {
			return ErrTimerRunning
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return txTimer.Set(ctx, state)
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// StopTimer turns the running timer into an entry with the default break.
// The entry belongs to the day the timer was started on.
func (s *dayService) StopTimer(ctx context.Context, now time.Time) (*domain.TimeEntry, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var entry *domain.TimeEntry
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimer := repository.NewSQLiteTimerRepo(tx)
		txDays := repository.NewSQLiteWorkDayRepo(tx)
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		state, err := txTimer.Get(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoTimer
		}
		if err != nil {
			return err
		}

		// An entry spans at most one midnight, so a longer run cannot be recorded.
		if now.Sub(state.StartInstant()) >= 24*time.Hour {
			return fmt.Errorf("started %s: %w", state.StartInstant().Format("2006-01-02 15:04"), ErrTimerTooLong)
		}
		end := domain.ClockOf(now)
		if end == state.Started {
			return ErrTimerTooShort
		}

		day, err := dayOrNew(ctx, txDays, state.Date)
		if err != nil {
			return err
		}
		if day.ID == "" {
			if err := txDays.Upsert(ctx, day); err != nil {
				return err
			}
		}

		entry = &domain.TimeEntry{
			WorkDayID:    day.ID,
			Start:        state.Started,
			End:          end,
			BreakMinutes: settings.BreakMinutes,
		}
		if err := txEntries.Create(ctx, entry); err != nil {
			return err
		}
		return txTimer.Clear(ctx)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *dayService) DiscardTimer(ctx context.Context) error {
	if _, err := s.timer.Get(ctx); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoTimer
		}
		return err
	}
	return s.timer.Clear(ctx)
}

func (s *dayService) TimerStatus(ctx context.Context, now time.Time) (*app.TimerStatus, error) {
	state, err := s.timer.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &app.TimerStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &app.TimerStatus{
		Running: true,
		Date:    state.Date,
		Started: state.Started,
		Elapsed: now.Sub(state.StartInstant()).Truncate(time.Minute),
	}, nil
}

// dayOrNew loads the stored day for date or returns an unsaved NORMAL day
// with an empty ID.
func dayOrNew(ctx context.Context, days repository.WorkDayRepo, date time.Time) (*domain.WorkDay, error) {
	day, err := days.GetByDate(ctx, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &domain.WorkDay{Date: domain.DateOnly(date), Type: domain.DayNormal}, nil
}
