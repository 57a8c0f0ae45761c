package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT work_days, work_hours_per_day, break_minutes, holiday_evening_hours, semi_day_off_hours
		FROM app_settings WHERE id = ?`
	var s domain.Settings
	var workDays string
	err := r.db.QueryRowContext(ctx, query, singletonID).Scan(
		&workDays,
		&s.WorkHoursPerDay,
		&s.BreakMinutes,
		&s.HolidayEveningHours,
		&s.SemiDayOffHours,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	s.WorkDays, err = domain.ParseWeekdayList(workDays)
	if err != nil {
		return nil, fmt.Errorf("parsing stored work days: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO app_settings (id, work_days, work_hours_per_day,
		break_minutes, holiday_evening_hours, semi_day_off_hours)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		singletonID,
		domain.FormatWeekdayList(s.SortedWorkDays()),
		s.WorkHoursPerDay,
		s.BreakMinutes,
		s.HolidayEveningHours,
		s.SemiDayOffHours,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
