package availability

import (
	"context"
	"time"
)

type Repository interface {
	// Atomically runs fn with every key held, reads and writes included.
	Atomically(ctx context.Context, keys []string, fn func(Ledger) error) error
	ListByTrainer(ctx context.Context, trainerID int) ([]Window, error)
}

// Ledger is the view of the store available inside one atomic unit.
type Ledger interface {
	WindowsFor(ctx context.Context, trainerID int, day time.Weekday) ([]Window, error)
	CreateWindow(ctx context.Context, w Window) (*Window, error)
}
