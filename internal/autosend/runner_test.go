package autosend

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances instantly on every After call.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

type scriptedSender struct {
	calls  []time.Time
	errs   []error
	onCall func()
}

func (s *scriptedSender) AutoSend(_ context.Context, now time.Time) (*app.AutoSendResult, error) {
	s.calls = append(s.calls, now)
	if s.onCall != nil {
		s.onCall()
	}
	if n := len(s.calls) - 1; n < len(s.errs) && s.errs[n] != nil {
		return nil, s.errs[n]
	}
	return &app.AutoSendResult{Sent: &app.SendResult{Month: domain.YearMonthOf(now).Prev()}}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func local(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.Local)
}

func TestNextRun(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"mid month", local(2026, time.October, 19, 12, 0), local(2026, time.November, 1, 2, 0)},
		{"first before two", local(2026, time.November, 1, 1, 30), local(2026, time.November, 1, 2, 0)},
		{"exactly two", local(2026, time.November, 1, 2, 0), local(2026, time.December, 1, 2, 0)},
		{"first after two", local(2026, time.November, 1, 9, 0), local(2026, time.December, 1, 2, 0)},
		{"year end", local(2026, time.December, 31, 23, 59), local(2027, time.January, 1, 2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(NextRun(tc.now)), "got %s", NextRun(tc.now))
		})
	}
}

func TestRunner_StartFiresOnFirstOfMonth(t *testing.T) {
	clock := &fakeClock{now: local(2026, time.October, 19, 12, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &scriptedSender{onCall: cancel}
	r := NewRunner(sender, quietLogger(), WithClock(clock.Now, clock.After))

	require.NoError(t, r.Start(ctx))
	require.Len(t, sender.calls, 1)
	assert.True(t, local(2026, time.November, 1, 2, 0).Equal(sender.calls[0]), "fired at %s", sender.calls[0])
}

func TestDueNow(t *testing.T) {
	assert.True(t, DueNow(local(2026, time.November, 1, 2, 0)))
	assert.True(t, DueNow(local(2026, time.November, 1, 23, 0)))
	assert.False(t, DueNow(local(2026, time.November, 1, 1, 59)))
	assert.False(t, DueNow(local(2026, time.November, 2, 9, 0)))
}

func TestRunner_StartOnFirstAfterRunHourSendsImmediately(t *testing.T) {
	started := local(2026, time.November, 1, 9, 0)
	clock := &fakeClock{now: started}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &scriptedSender{onCall: cancel}
	r := NewRunner(sender, quietLogger(), WithClock(clock.Now, clock.After))

	require.NoError(t, r.Start(ctx))
	require.Len(t, sender.calls, 1)
	assert.True(t, started.Equal(sender.calls[0]), "fired at %s", sender.calls[0])
}

func TestRunner_StartOnFirstBeforeRunHourWaits(t *testing.T) {
	clock := &fakeClock{now: local(2026, time.November, 1, 1, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &scriptedSender{onCall: cancel}
	r := NewRunner(sender, quietLogger(), WithClock(clock.Now, clock.After))

	require.NoError(t, r.Start(ctx))
	require.Len(t, sender.calls, 1)
	assert.True(t, local(2026, time.November, 1, 2, 0).Equal(sender.calls[0]), "fired at %s", sender.calls[0])
}

func TestRunner_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &scriptedSender{}
	r := NewRunner(sender, quietLogger())

	require.NoError(t, r.Start(ctx))
	assert.Empty(t, sender.calls)
}

func TestRunner_RunOnceRetries(t *testing.T) {
	clock := &fakeClock{now: local(2026, time.November, 1, 2, 0)}
	boom := errors.New("network down")
	sender := &scriptedSender{errs: []error{boom, boom}}
	r := NewRunner(sender, quietLogger(), WithClock(clock.Now, clock.After), WithRetry(time.Minute, 3))

	res, err := r.RunOnce(context.Background(), clock.Now())
	require.NoError(t, err)
	require.NotNil(t, res.Sent)
	assert.Len(t, sender.calls, 3)
	assert.True(t, local(2026, time.November, 1, 2, 2).Equal(clock.Now()))
}

func TestRunner_RunOnceGivesUp(t *testing.T) {
	clock := &fakeClock{now: local(2026, time.November, 1, 2, 0)}
	boom := errors.New("network down")
	sender := &scriptedSender{errs: []error{boom, boom, boom}}
	r := NewRunner(sender, quietLogger(), WithClock(clock.Now, clock.After), WithRetry(time.Minute, 2))

	_, err := r.RunOnce(context.Background(), clock.Now())
	require.ErrorIs(t, err, boom)
	assert.Len(t, sender.calls, 3)
}

func TestRunner_RunOnceSkipIsSuccess(t *testing.T) {
	sender := skipSender{}
	r := NewRunner(sender, quietLogger())

	res, err := r.RunOnce(context.Background(), local(2026, time.October, 19, 12, 0))
	require.NoError(t, err)
	assert.Nil(t, res.Sent)
	assert.Equal(t, "not the first day of the month", res.SkipReason)
}

type skipSender struct{}

func (skipSender) AutoSend(context.Context, time.Time) (*app.AutoSendResult, error) {
	return &app.AutoSendResult{SkipReason: "not the first day of the month"}, nil
}
