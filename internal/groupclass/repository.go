package groupclass

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/conflict"
	"fitclub/internal/db"
	"fitclub/internal/schedule"

	"github.com/jmoiron/sqlx"
)

const classColumns = `id, name, room_id, trainer_id, class_date, start_minute, end_minute, capacity, created_at`

var constraintReasons = map[string]conflict.Reason{
	"group_classes_room_no_overlap":    conflict.RoomDoubleBooked,
	"group_classes_trainer_no_overlap": conflict.TrainerDoubleBooked,
	"group_classes_capacity_positive":  conflict.InvalidCapacity,
	"group_classes_interval_valid":     conflict.InvalidInterval,
	"group_classes_room_id_fkey":       conflict.RoomNotFound,
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

func (r *repository) GetClass(ctx context.Context, id int) (*Class, error) {
	query := `SELECT ` + classColumns + ` FROM group_classes WHERE id = $1`

	var c Class
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	c.Date = schedule.DateOf(c.Date)
	return &c, nil
}

func (r *repository) ListFrom(ctx context.Context, from time.Time) ([]UpcomingClass, error) {
	query := `
		SELECT c.id, c.name, c.room_id, c.trainer_id, c.class_date, c.start_minute,
		       c.end_minute, c.capacity, c.created_at, COUNT(r.id) AS registered
		FROM group_classes c
		LEFT JOIN class_registrations r ON r.class_id = c.id
		WHERE c.class_date >= $1
		GROUP BY c.id
		ORDER BY c.class_date, c.start_minute, c.id
	`

	classes := []UpcomingClass{}
	err := r.db.SelectContext(ctx, &classes, query, from.Format(schedule.DateLayout))
	if err != nil {
		return nil, err
	}

	for i := range classes {
		classes[i].Date = schedule.DateOf(classes[i].Date)
	}
	return classes, nil
}

type ledger struct {
	tx *sqlx.Tx
}

func (l *ledger) RoomCapacity(ctx context.Context, roomID int) (int, bool, error) {
	var capacity int
	err := l.tx.GetContext(ctx, &capacity, `SELECT capacity FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return capacity, true, nil
}

func (l *ledger) ClassesInRoom(ctx context.Context, roomID int, date time.Time) ([]Class, error) {
	query := `SELECT ` + classColumns + ` FROM group_classes
		WHERE room_id = $1 AND class_date = $2
		ORDER BY start_minute`
	return l.selectClasses(ctx, query, roomID, date)
}

func (l *ledger) ClassesForTrainer(ctx context.Context, trainerID int, date time.Time) ([]Class, error) {
	query := `SELECT ` + classColumns + ` FROM group_classes
		WHERE trainer_id = $1 AND class_date = $2
		ORDER BY start_minute`
	return l.selectClasses(ctx, query, trainerID, date)
}

func (l *ledger) selectClasses(ctx context.Context, query string, id int, date time.Time) ([]Class, error) {
	var classes []Class
	if err := l.tx.SelectContext(ctx, &classes, query, id, date.Format(schedule.DateLayout)); err != nil {
		return nil, err
	}
	for i := range classes {
		classes[i].Date = schedule.DateOf(classes[i].Date)
	}
	return classes, nil
}

func (l *ledger) TrainerWindows(ctx context.Context, trainerID int, day time.Weekday) ([]availability.Window, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_minute, end_minute, created_at
		FROM trainer_availability
		WHERE trainer_id = $1 AND day_of_week = $2
		ORDER BY start_minute
	`

	var windows []availability.Window
	if err := l.tx.SelectContext(ctx, &windows, query, trainerID, int(day)); err != nil {
		return nil, err
	}
	return windows, nil
}

func (l *ledger) CreateClass(ctx context.Context, c Class) (*Class, error) {
	query := `
		INSERT INTO group_classes (name, room_id, trainer_id, class_date, start_minute, end_minute, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + classColumns

	var created Class
	err := l.tx.GetContext(ctx, &created, query,
		c.Name, c.RoomID, c.TrainerID, c.Date.Format(schedule.DateLayout), int(c.Start), int(c.End), c.Capacity)
	if err != nil {
		if rej, ok := db.ConstraintRejection(err, constraintReasons); ok {
			return nil, rej
		}
		return nil, err
	}

	created.Date = schedule.DateOf(created.Date)
	return &created, nil
}
