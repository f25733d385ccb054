package registration

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/conflict"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/schedule"

	"github.com/jmoiron/sqlx"
)

var constraintReasons = map[string]conflict.Reason{
	"class_registrations_member_unique": conflict.AlreadyRegistered,
	"class_registrations_class_id_fkey": conflict.ClassNotFound,
}

type repository struct {
	db     *sqlx.DB
	runner *db.TxRunner
}

func NewRepository(sqlxDB *sqlx.DB, runner *db.TxRunner) Repository {
	return &repository{db: sqlxDB, runner: runner}
}

func (r *repository) Atomically(ctx context.Context, keys []string, fn func(Ledger) error) error {
	return r.runner.RunInTx(ctx, keys, func(tx *sqlx.Tx) error {
		return fn(&ledger{tx: tx})
	})
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Enrollment, error) {
	query := `
		SELECT r.id AS registration_id, c.id AS class_id, c.name AS class_name, c.room_id,
		       c.trainer_id, c.class_date, c.start_minute, c.end_minute, r.created_at AS registered_at
		FROM class_registrations r
		JOIN group_classes c ON c.id = r.class_id
		WHERE r.member_id = $1
		ORDER BY c.class_date, c.start_minute, c.id
	`

	enrollments := []Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, memberID); err != nil {
		return nil, err
	}
	for i := range enrollments {
		enrollments[i].Date = schedule.DateOf(enrollments[i].Date)
	}
	return enrollments, nil
}

type ledger struct {
	tx *sqlx.Tx
}

// GetClass locks the class row until the transaction ends.
func (l *ledger) GetClass(ctx context.Context, classID int) (*groupclass.Class, bool, error) {
	query := `
		SELECT id, name, room_id, trainer_id, class_date, start_minute, end_minute, capacity, created_at
		FROM group_classes
		WHERE id = $1
		FOR UPDATE
	`

	var c groupclass.Class
	err := l.tx.GetContext(ctx, &c, query, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	c.Date = schedule.DateOf(c.Date)
	return &c, true, nil
}

func (l *ledger) IsRegistered(ctx context.Context, classID, memberID int) (bool, error) {
	var exists bool
	err := l.tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM class_registrations WHERE class_id = $1 AND member_id = $2)`,
		classID, memberID)
	return exists, err
}

func (l *ledger) CountForClass(ctx context.Context, classID int) (int, error) {
	var count int
	err := l.tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM class_registrations WHERE class_id = $1`, classID)
	return count, err
}

func (l *ledger) CreateRegistration(ctx context.Context, classID, memberID int) (*Registration, error) {
	query := `
		INSERT INTO class_registrations (class_id, member_id)
		VALUES ($1, $2)
		RETURNING id, class_id, member_id, created_at
	`

	var reg Registration
	err := l.tx.GetContext(ctx, &reg, query, classID, memberID)
	if err != nil {
		if rej, ok := db.ConstraintRejection(err, constraintReasons); ok {
			return nil, rej
		}
		return nil, err
	}

	return &reg, nil
}
