package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/google/uuid"
)

// SQLiteWorkDayRepo implements WorkDayRepo using a SQLite database.
type SQLiteWorkDayRepo struct {
	db db.DBTX
}

// NewSQLiteWorkDayRepo creates a new SQLiteWorkDayRepo.
func NewSQLiteWorkDayRepo(conn db.DBTX) *SQLiteWorkDayRepo {
	return &SQLiteWorkDayRepo{db: conn}
}

func (r *SQLiteWorkDayRepo) GetByDate(ctx context.Context, date time.Time) (*domain.WorkDay, error) {
	query := `SELECT id, date, day_type, comment FROM work_days WHERE date = ?`
	d, err := scanWorkDay(r.db.QueryRowContext(ctx, query, formatDate(date)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work day %s: %w", formatDate(date), ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

func (r *SQLiteWorkDayRepo) Upsert(ctx context.Context, d *domain.WorkDay) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Type == "" {
		d.Type = domain.DayNormal
	}
	query := `INSERT INTO work_days (id, date, day_type, comment) VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET day_type = excluded.day_type, comment = excluded.comment`
	if _, err := r.db.ExecContext(ctx, query, d.ID, formatDate(d.Date), string(d.Type), d.Comment); err != nil {
		return fmt.Errorf("upserting work day: %w", err)
	}

	// An existing row keeps its ID.
	err := r.db.QueryRowContext(ctx, `SELECT id FROM work_days WHERE date = ?`, formatDate(d.Date)).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("reading work day id: %w", err)
	}
	return nil
}

// ListInRange returns the stored days between start and end inclusive, in
// date order, each with its entries in start order.
func (r *SQLiteWorkDayRepo) ListInRange(ctx context.Context, start, end time.Time) ([]domain.DayWithEntries, error) {
	from, to := formatDate(start), formatDate(end)

	days, err := r.listDays(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Day.ID] = i
	}

	query := `SELECT e.id, e.work_day_id, e.start_time, e.end_time, e.break_minutes
		FROM time_entries e
		JOIN work_days d ON d.id = e.work_day_id
		WHERE d.date BETWEEN ? AND ?
		ORDER BY d.date, e.start_time, e.created_at`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing time entries in range: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		i := index[e.WorkDayID]
		days[i].Entries = append(days[i].Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return days, nil
}

// listDays must finish reading before entries are queried: an in-memory
// database has a single connection.
func (r *SQLiteWorkDayRepo) listDays(ctx context.Context, from, to string) ([]domain.DayWithEntries, error) {
	query := `SELECT id, date, day_type, comment FROM work_days
		WHERE date BETWEEN ? AND ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing work days: %w", err)
	}
	defer rows.Close()

	var days []domain.DayWithEntries
	for rows.Next() {
		d, err := scanWorkDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, domain.DayWithEntries{Day: d})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work days: %w", err)
	}
	return days, nil
}

func (r *SQLiteWorkDayRepo) ListForMonth(ctx context.Context, ym domain.YearMonth) ([]domain.DayWithEntries, error) {
	return r.ListInRange(ctx, ym.First(), ym.Last())
}

// MonthsWithData lists, oldest first, every month holding at least one
// stored work day, the same rows ListForMonth returns.
func (r *SQLiteWorkDayRepo) MonthsWithData(ctx context.Context) ([]domain.YearMonth, error) {
	query := `SELECT DISTINCT substr(date, 1, 7) AS ym FROM work_days ORDER BY ym`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing months with data: %w", err)
	}
	defer rows.Close()

	var months []domain.YearMonth
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning month: %w", err)
		}
		ym, err := domain.ParseYearMonth(s)
		if err != nil {
			return nil, fmt.Errorf("parsing stored month %q: %w", s, err)
		}
		months = append(months, ym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating months: %w", err)
	}
	return months, nil
}

func (r *SQLiteWorkDayRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_days WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work day: %w", err)
	}
	return requireAffected(res, "work day "+id)
}

func scanWorkDay(row rowScanner) (domain.WorkDay, error) {
	var d domain.WorkDay
	var date, dayType string
	if err := row.Scan(&d.ID, &date, &dayType, &d.Comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, err
		}
		return d, fmt.Errorf("scanning work day: %w", err)
	}

	var err error
	if d.Date, err = parseStoredDate(date); err != nil {
		return d, err
	}
	d.Type = domain.DayType(dayType)
	return d, nil
}
