package availability

import (
	"context"
	"time"

	"fitclub/internal/conflict"
	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

var constraintReasons = map[string]conflict.Reason{
	"trainer_availability_no_overlap":     conflict.AvailabilityOverlap,
	"trainer_availability_interval_valid": conflict.InvalidInterval,
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

func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]Window, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_minute, end_minute, created_at
		FROM trainer_availability
		WHERE trainer_id = $1
		ORDER BY (day_of_week + 6) % 7, start_minute
	`

	windows := []Window{}
	err := r.db.SelectContext(ctx, &windows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

type ledger struct {
	tx *sqlx.Tx
}

func (l *ledger) WindowsFor(ctx context.Context, trainerID int, day time.Weekday) ([]Window, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_minute, end_minute, created_at
		FROM trainer_availability
		WHERE trainer_id = $1 AND day_of_week = $2
		ORDER BY start_minute
	`

	var windows []Window
	err := l.tx.SelectContext(ctx, &windows, query, trainerID, int(day))
	if err != nil {
		return nil, err
	}

	return windows, nil
}

func (l *ledger) CreateWindow(ctx context.Context, w Window) (*Window, error) {
	query := `
		INSERT INTO trainer_availability (trainer_id, day_of_week, start_minute, end_minute)
		VALUES ($1, $2, $3, $4)
		RETURNING id, trainer_id, day_of_week, start_minute, end_minute, created_at
	`

	var created Window
	err := l.tx.GetContext(ctx, &created, query, w.TrainerID, int(w.DayOfWeek), int(w.Start), int(w.End))
	if err != nil {
		if rej, ok := db.ConstraintRejection(err, constraintReasons); ok {
			return nil, rej
		}
		return nil, err
	}

	return &created, nil
}
