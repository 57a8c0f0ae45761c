package service

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

// UseCaseEvent describes one finished report use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each event through logger; a nil logger
// yields a NoopUseCaseObserver.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Duration("took", event.Duration),
	}
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level, msg := slog.LevelInfo, "report use case finished"
	if !event.Success {
		level, msg = slog.LevelError, "report use case failed"
		if event.Err != nil {
			attrs = append(attrs, slog.String("error", event.Err.Error()))
		}
	}
	o.logger.LogAttrs(ctx, level, msg, attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// observe reports a use case when the returned func runs. Callers defer it
// with a pointer to their named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any, errp *error) func() {
	startedAt := time.Now()
	return func() {
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   *errp == nil,
			Err:       *errp,
			Fields:    fields,
		})
	}
}
