package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
)

// SQLiteTimerRepo stores the single running clock-in timer.
type SQLiteTimerRepo struct {
	db db.DBTX
}

// NewSQLiteTimerRepo creates a new SQLiteTimerRepo.
func NewSQLiteTimerRepo(conn db.DBTX) *SQLiteTimerRepo {
	return &SQLiteTimerRepo{db: conn}
}

func (r *SQLiteTimerRepo) Get(ctx context.Context) (*domain.TimerState, error) {
	var date, started, instant string
	err := r.db.QueryRowContext(ctx,
		`SELECT work_date, started_at, started_instant FROM timer_state WHERE id = ?`, singletonID,
	).Scan(&date, &started, &instant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("timer: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning timer: %w", err)
	}

	var s domain.TimerState
	if s.Date, err = parseStoredDate(date); err != nil {
		return nil, err
	}
	if s.Started, err = parseStoredClock(started); err != nil {
		return nil, err
	}
	if instant != "" {
		if s.StartedAt, err = time.Parse(time.RFC3339, instant); err != nil {
			return nil, fmt.Errorf("parsing timer start %q: %w", instant, err)
		}
	}
	return &s, nil
}

func (r *SQLiteTimerRepo) Set(ctx context.Context, s domain.TimerState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO timer_state (id, work_date, started_at, started_instant) VALUES (?, ?, ?, ?)`,
		singletonID, formatDate(s.Date), s.Started.String(), formatInstant(s.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("saving timer: %w", err)
	}
	return nil
}

func (r *SQLiteTimerRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timer_state WHERE id = ?`, singletonID); err != nil {
		return fmt.Errorf("clearing timer: %w", err)
	}
	return nil
}
