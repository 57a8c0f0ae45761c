package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/workclock/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th ExecContext call inside a
// transaction, counting from 1. Reads are not counted. It lets tests check
// that a multi-write use case leaves nothing behind when a later write fails.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.RunInTx(ctx, u.DB, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type countingTx struct {
	db.DBTX
	execs  atomic.Int32
	failOn int32
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.execs.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
