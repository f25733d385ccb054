package db

import (
	"context"
	"time"

	"fitclub/internal/keylock"

	"github.com/jmoiron/sqlx"
)

// TxRunner executes read-check-write sequences as one atomic unit per
// conflict domain: every key is held from before the first read until after
// commit. Without a Locker the keys become transaction-scoped Postgres
// advisory locks, released by commit or rollback.
type TxRunner struct {
	db      *sqlx.DB
	locks   keylock.Locker
	timeout time.Duration
}

func NewTxRunner(db *sqlx.DB, locks keylock.Locker, timeout time.Duration) *TxRunner {
	return &TxRunner{db: db, locks: locks, timeout: timeout}
}

func (r *TxRunner) RunInTx(ctx context.Context, keys []string, fn func(tx *sqlx.Tx) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	keys = keylock.Normalize(keys)

	if r.locks != nil {
		unlock, err := keylock.LockAll(ctx, r.locks, keys)
		if err != nil {
			return Classify(err)
		}
		defer unlock()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Classify(err)
	}
	defer tx.Rollback()

	if r.locks == nil {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
				return Classify(err)
			}
		}
	}

	if err := fn(tx); err != nil {
		return Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return Classify(err)
	}

	return nil
}
