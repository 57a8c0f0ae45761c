package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

type WorkDayRepo interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.WorkDay, error)
	// Upsert inserts the day or updates the row stored for the same date.
	// On return d.ID holds the stored row's ID.
	Upsert(ctx context.Context, d *domain.WorkDay) error
	ListInRange(ctx context.Context, start, end time.Time) ([]domain.DayWithEntries, error)
	ListForMonth(ctx context.Context, ym domain.YearMonth) ([]domain.DayWithEntries, error)
	MonthsWithData(ctx context.Context) ([]domain.YearMonth, error)
	Delete(ctx context.Context, id string) error
}

type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	ListByWorkDay(ctx context.Context, workDayID string) ([]domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type EmailConfigRepo interface {
	Get(ctx context.Context) (*domain.EmailConfig, error)
	Upsert(ctx context.Context, c *domain.EmailConfig) error
}

type TimerRepo interface {
	Get(ctx context.Context) (*domain.TimerState, error)
	Set(ctx context.Context, s domain.TimerState) error
	Clear(ctx context.Context) error
}
