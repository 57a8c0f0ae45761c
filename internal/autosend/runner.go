// Package autosend runs the monthly report delivery in the background.
package autosend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/workclock/internal/app"
)

const (
	runHour = 2
	// maxSleep bounds each wait so wall-clock jumps (suspend, clock changes)
	// are noticed within the hour.
	maxSleep = time.Hour

	DefaultRetryDelay = 15 * time.Minute
	DefaultMaxRetries = 3
)

// Sender performs one auto-send check.
type Sender interface {
	AutoSend(ctx context.Context, now time.Time) (*app.AutoSendResult, error)
}

type Runner struct {
	sender     Sender
	logger     *slog.Logger
	now        func() time.Time
	after      func(time.Duration) <-chan time.Time
	retryDelay time.Duration
	maxRetries int
}

type Option func(*Runner)

// WithRetry sets the delay between failed attempts and how many retries
// follow the first attempt.
func WithRetry(delay time.Duration, maxRetries int) Option {
	return func(r *Runner) {
		r.retryDelay = delay
		r.maxRetries = maxRetries
	}
}

// WithClock replaces the wall clock and timer, for tests.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(r *Runner) {
		r.now = now
		r.after = after
	}
}

func NewRunner(sender Sender, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		sender:     sender,
		logger:     logger,
		now:        time.Now,
		after:      time.After,
		retryDelay: DefaultRetryDelay,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// NextRun returns the first 02:00 on the first day of a month strictly
// after now.
func NextRun(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), 1, runHour, 0, 0, 0, now.Location())
	if now.Before(candidate) {
		return candidate
	}
	return candidate.AddDate(0, 1, 0)
}

// DueNow reports whether now falls on the first of a month at or after the
// run hour, when a daemon that missed 02:00 should send straight away.
func DueNow(now time.Time) bool {
	return now.Day() == 1 && now.Hour() >= runHour
}

// Start runs auto-send at every NextRun until ctx is cancelled. Started on
// the first of a month after the run hour it sends at once, relying on the
// sender to skip a month it already delivered. Send failures are logged and
// never stop the loop.
func (r *Runner) Start(ctx context.Context) error {
	if now := r.now(); DueNow(now) {
		r.logger.InfoContext(ctx, "auto-send catching up", "date", now.Format(time.DateOnly))
		_, _ = r.RunOnce(ctx, now)
	}
	for ctx.Err() == nil {
		next := NextRun(r.now())
		r.logger.InfoContext(ctx, "auto-send scheduled", "next_run", next.Format(time.RFC3339))

		if err := r.waitUntil(ctx, next); err != nil {
			return nil
		}
		_, _ = r.RunOnce(ctx, r.now())
	}
	return nil
}

// RunOnce performs one auto-send check, retrying failures.
func (r *Runner) RunOnce(ctx context.Context, now time.Time) (*app.AutoSendResult, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-r.after(r.retryDelay):
			}
		}

		result, err := r.sender.AutoSend(ctx, now)
		if err == nil {
			r.logResult(ctx, result)
			return result, nil
		}
		lastErr = err
		r.logger.WarnContext(ctx, "auto-send failed",
			"attempt", attempt+1,
			"max_attempts", r.maxRetries+1,
			"error", err)
	}
	r.logger.ErrorContext(ctx, "auto-send gave up", "error", lastErr)
	return nil, fmt.Errorf("auto-send failed after %d attempts: %w", r.maxRetries+1, lastErr)
}

func (r *Runner) logResult(ctx context.Context, result *app.AutoSendResult) {
	if result.Sent == nil {
		r.logger.InfoContext(ctx, "auto-send skipped", "reason", result.SkipReason)
		return
	}
	r.logger.InfoContext(ctx, "auto-send complete",
		"month", result.Sent.Month.String(),
		"recipients", len(result.Sent.Recipients))
}

func (r *Runner) waitUntil(ctx context.Context, at time.Time) error {
	for {
		remaining := at.Sub(r.now())
		if remaining <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.after(min(remaining, maxSleep)):
		}
	}
}
