package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate brings the schema up to date. The number of applied statements is
// kept in PRAGMA user_version, so each statement runs once per database and
// a partial upgrade never becomes visible.
func Migrate(conn *sql.DB) error {
	ctx := context.Background()
	return RunInTx(ctx, conn, func(ctx context.Context, tx DBTX) error {
		applied, err := SchemaVersion(ctx, tx)
		if err != nil {
			return err
		}
		if applied > len(migrations) {
			return fmt.Errorf("database schema version %d is newer than this build (%d)", applied, len(migrations))
		}

		for i := applied; i < len(migrations); i++ {
			if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
				return fmt.Errorf("migration %d: %w", i+1, err)
			}
		}

		if applied == len(migrations) {
			return nil
		}
		// PRAGMA does not accept bound parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", len(migrations))); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
		return nil
	})
}

// SchemaVersion returns how many migrations have been applied.
func SchemaVersion(ctx context.Context, conn DBTX) (int, error) {
	var v int
	if err := conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

var migrations = []string{
	`CREATE TABLE work_days (
		id       TEXT PRIMARY KEY,
		date     TEXT NOT NULL UNIQUE,
		day_type TEXT NOT NULL DEFAULT 'NORMAL'
		         CHECK(day_type IN ('NORMAL','HOLIDAY','HOLIDAY_EVENING','DAY_OFF','SEMI_DAY_OFF')),
		comment  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE time_entries (
		id            TEXT PRIMARY KEY,
		work_day_id   TEXT NOT NULL REFERENCES work_days(id) ON DELETE CASCADE,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX idx_time_entries_work_day ON time_entries(work_day_id)`,

	`CREATE TABLE app_settings (
		id                    TEXT PRIMARY KEY,
		work_days             TEXT NOT NULL,
		work_hours_per_day    INTEGER NOT NULL CHECK(work_hours_per_day >= 0),
		break_minutes         INTEGER NOT NULL CHECK(break_minutes >= 0),
		holiday_evening_hours INTEGER NOT NULL CHECK(holiday_evening_hours >= 0)
	)`,

	// Semi day-off support arrived after the first schema.
	`ALTER TABLE app_settings ADD COLUMN semi_day_off_hours INTEGER NOT NULL DEFAULT 4`,

	`CREATE TABLE email_config (
		id                TEXT PRIMARY KEY,
		sender_email      TEXT NOT NULL DEFAULT '',
		recipients        TEXT NOT NULL DEFAULT '',
		subject           TEXT NOT NULL DEFAULT '',
		body              TEXT NOT NULL DEFAULT '',
		auto_send_enabled INTEGER NOT NULL DEFAULT 0,
		access_token      TEXT NOT NULL DEFAULT '',
		refresh_token     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE timer_state (
		id         TEXT PRIMARY KEY,
		work_date  TEXT NOT NULL,
		started_at TEXT NOT NULL
	)`,

	`ALTER TABLE timer_state ADD COLUMN started_instant TEXT NOT NULL DEFAULT ''`,

	`ALTER TABLE email_config ADD COLUMN last_auto_sent TEXT NOT NULL DEFAULT ''`,
}
