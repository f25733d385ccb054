package room

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoom(ctx context.Context, name string, capacity int) (*Room, error) {
	query := `
		INSERT INTO rooms (name, capacity)
		VALUES ($1, $2)
		RETURNING id, name, capacity, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, capacity)
	if err != nil {
		if code, _, ok := db.PgError(err); ok && code == db.CodeUniqueViolation {
			return nil, ErrRoomNameTaken
		}
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetAllRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, name, capacity, created_at
		FROM rooms
		ORDER BY id ASC
	`

	rooms := []Room{}
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT id, name, capacity, created_at
		FROM rooms
		WHERE id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}
