package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/google/uuid"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo using a SQLite database.
type SQLiteTimeEntryRepo struct {
	db db.DBTX
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(conn db.DBTX) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: conn}
}

const timeEntryColumns = `id, work_day_id, start_time, end_time, break_minutes`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO time_entries (id, work_day_id, start_time, end_time, break_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkDayID,
		e.Start.String(),
		e.End.String(),
		e.BreakMinutes,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = ?`
	e, err := scanTimeEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("time entry %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteTimeEntryRepo) ListByWorkDay(ctx context.Context, workDayID string) ([]domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE work_day_id = ? ORDER BY start_time, created_at`
	rows, err := r.db.QueryContext(ctx, query, workDayID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	query := `UPDATE time_entries SET start_time = ?, end_time = ?, break_minutes = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, e.Start.String(), e.End.String(), e.BreakMinutes, e.ID)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	return requireAffected(res, "time entry "+e.ID)
}

func (r *SQLiteTimeEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	return requireAffected(res, "time entry "+id)
}

func scanTimeEntry(row rowScanner) (domain.TimeEntry, error) {
	var e domain.TimeEntry
	var start, end string
	if err := row.Scan(&e.ID, &e.WorkDayID, &start, &end, &e.BreakMinutes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning time entry: %w", err)
	}

	var err error
	if e.Start, err = parseStoredClock(start); err != nil {
		return e, err
	}
	if e.End, err = parseStoredClock(end); err != nil {
		return e, err
	}
	return e, nil
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
