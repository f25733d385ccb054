package groupclass

import (
	"context"
	"time"

	"fitclub/internal/availability"
)

type Repository interface {
	// Atomically runs fn with every key held, reads and writes included.
	Atomically(ctx context.Context, keys []string, fn func(Ledger) error) error
	GetClass(ctx context.Context, id int) (*Class, error)
	// ListFrom returns classes dated on or after from with their registration
	// counts, ordered by date, start time and id.
	ListFrom(ctx context.Context, from time.Time) ([]UpcomingClass, error)
}

// Ledger is the view of the store available inside one atomic unit.
type Ledger interface {
	// RoomCapacity reports found=false when the room does not exist.
	RoomCapacity(ctx context.Context, roomID int) (capacity int, found bool, err error)
	ClassesInRoom(ctx context.Context, roomID int, date time.Time) ([]Class, error)
	ClassesForTrainer(ctx context.Context, trainerID int, date time.Time) ([]Class, error)
	TrainerWindows(ctx context.Context, trainerID int, day time.Weekday) ([]availability.Window, error)
	CreateClass(ctx context.Context, c Class) (*Class, error)
}
