package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/mail"
)

type SettingsService interface {
	// Get returns the stored settings, or the defaults before the first save.
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
	EnsureDefaults(ctx context.Context) (*domain.Settings, error)
}

type DayService interface {
	Detail(ctx context.Context, date time.Time) (*app.DayDetail, error)
	// SetDayType keeps the stored comment when comment is nil.
	SetDayType(ctx context.Context, date time.Time, t domain.DayType, comment *string) (*domain.WorkDay, error)
	AddEntry(ctx context.Context, req app.AddEntryRequest) (*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, id string, upd app.EntryUpdate) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	StartTimer(ctx context.Context, date, now time.Time) (*domain.TimerState, error)
	StopTimer(ctx context.Context, now time.Time) (*domain.TimeEntry, error)
	// DiscardTimer clears the running timer without logging anything.
	DiscardTimer(ctx context.Context) error
	TimerStatus(ctx context.Context, now time.Time) (*app.TimerStatus, error)
}

type SummaryService interface {
	app.MonthSummaryUseCase
}

type EmailConfigService interface {
	Get(ctx context.Context) (*domain.EmailConfig, error)
	AddRecipient(ctx context.Context, addr string) (*domain.EmailConfig, error)
	RemoveRecipient(ctx context.Context, addr string) (*domain.EmailConfig, error)
	SetTemplate(ctx context.Context, subject, body string) error
	SetSender(ctx context.Context, addr string) error
	SetAutoSend(ctx context.Context, enabled bool) error
	// MarkAutoSent records month as delivered so auto-send never repeats it.
	MarkAutoSent(ctx context.Context, month domain.YearMonth) error
	SaveTokens(ctx context.Context, accessToken, refreshToken string) error
	ClearTokens(ctx context.Context) error
	mail.TokenStore
}

type ReportService interface {
	app.ReportUseCase
}
