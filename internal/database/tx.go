package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql operations repositories need.
// Both *sql.DB and *sql.Tx satisfy it, so repository methods can run either
// standalone or inside a unit of work started by WithTx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WithTx runs fn inside a transaction with guaranteed commit-or-rollback on
// every exit path. A panic inside fn rolls back and re-panics; an error from
// fn rolls back and is returned unchanged so callers can match on it.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit tx: %w", cErr)
		}
	}()

	err = fn(tx)
	return err
}
