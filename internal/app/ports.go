package app

import (
	"context"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

type MonthSummaryUseCase interface {
	Month(ctx context.Context, req MonthSummaryRequest) (*MonthSummary, error)
	History(ctx context.Context) ([]MonthHistoryEntry, error)
}

type LogTimeUseCase interface {
	AddEntry(ctx context.Context, req AddEntryRequest) (*domain.TimeEntry, error)
	StartTimer(ctx context.Context, date, now time.Time) (*domain.TimerState, error)
	StopTimer(ctx context.Context, now time.Time) (*domain.TimeEntry, error)
}

type ReportUseCase interface {
	Export(ctx context.Context, req ExportRequest) (string, error)
	Send(ctx context.Context, req SendRequest) (*SendResult, error)
	AutoSend(ctx context.Context, now time.Time) (*AutoSendResult, error)
}

// ResolveNow returns *now, or the current time when now is nil.
func ResolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
