package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx. Repositories are built on
// it so the same code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// TxFunc is the body of a transaction. It must only use tx: the pool may
// hold a single connection, which tx already owns.
type TxFunc func(ctx context.Context, tx DBTX) error

// UnitOfWork groups the writes of one use case, such as creating a work day
// together with its first time entry, so they land or fail together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// RunInTx runs fn in a transaction on conn, committing when fn returns nil
// and rolling back on error or panic.
func RunInTx(ctx context.Context, conn *sql.DB, fn TxFunc) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = fmt.Errorf("rollback failed: %v (after: %w)", rbErr, err)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}

// SQLiteUnitOfWork implements UnitOfWork over one SQLite database.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return RunInTx(ctx, u.db, fn)
}
