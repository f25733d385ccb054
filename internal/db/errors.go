package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"fitclub/internal/conflict"
	"fitclub/internal/keylock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrTransient marks store failures the caller may resubmit unchanged.
// Nothing from the failed attempt was committed.
var ErrTransient = errors.New("transient store failure")

const (
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeForeignKeyViolation  = "23503"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeAdminShutdown        = "57P01"
	CodeQueryCanceled        = "57014"
)

// PgError reports the SQLSTATE and constraint name of a Postgres error
// raised through either lib/pq or pgx.
func PgError(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

// Classify leaves rejections untouched, marks retryable store failures with
// ErrTransient and returns every other error as is.
func Classify(err error) error {
	if err == nil || conflict.IsRejection(err) || errors.Is(err, ErrTransient) {
		return err
	}
	if IsTransient(err) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}

func IsTransient(err error) bool {
	switch {
	case errors.Is(err, ErrTransient),
		errors.Is(err, keylock.ErrLockTimeout),
		errors.Is(err, keylock.ErrLockUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn):
		return true
	}

	if code, _, ok := PgError(err); ok {
		switch {
		case code == CodeSerializationFailure,
			code == CodeDeadlockDetected,
			code == CodeAdminShutdown,
			code == CodeQueryCanceled,
			strings.HasPrefix(code, "08"):
			return true
		}
	}

	return false
}

// ConstraintRejection translates a constraint violation into the rejection
// registered for that constraint name.
func ConstraintRejection(err error, byConstraint map[string]conflict.Reason) (*conflict.Error, bool) {
	code, constraint, ok := PgError(err)
	if !ok {
		return nil, false
	}
	switch code {
	case CodeUniqueViolation, CodeExclusionViolation, CodeCheckViolation, CodeForeignKeyViolation:
	default:
		return nil, false
	}
	reason, ok := byConstraint[constraint]
	if !ok {
		return nil, false
	}
	return conflict.New(reason), true
}
