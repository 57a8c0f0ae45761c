package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/workclock/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestFileDB opens a migrated database file under t.TempDir and returns
// both the handle and its path, so tests can reopen it.
func NewTestFileDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "workclock.db")
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("failed to create test database file: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database, path
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, conn db.DBTX, table string) int {
	t.Helper()
	var n int
	// Table names come from test code only.
	if err := conn.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}
