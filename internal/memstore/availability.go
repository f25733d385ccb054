package memstore

import (
	"context"
	"sort"
	"time"

	"fitclub/internal/availability"
)

type availabilityRepo struct {
	s *Store
}

func (r availabilityRepo) Atomically(ctx context.Context, keys []string, fn func(availability.Ledger) error) error {
	return r.s.atomically(ctx, keys, func(tx *txn) error {
		return fn(availabilityLedger{tx})
	})
}

func (r availabilityRepo) ListByTrainer(ctx context.Context, trainerID int) ([]availability.Window, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	windows := []availability.Window{}
	for _, w := range r.s.windows {
		if w.TrainerID == trainerID {
			windows = append(windows, w)
		}
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].ID < windows[j].ID })

	return windows, nil
}

type availabilityLedger struct {
	tx *txn
}

func (l availabilityLedger) WindowsFor(ctx context.Context, trainerID int, day time.Weekday) ([]availability.Window, error) {
	return l.tx.store.windowsFor(trainerID, day), nil
}

func (l availabilityLedger) CreateWindow(ctx context.Context, w availability.Window) (*availability.Window, error) {
	s := l.tx.store
	w.ID = s.allocate("windows")
	w.CreatedAt = s.timestamp()
	l.tx.stage(func() { s.windows[w.ID] = w })
	return &w, nil
}

func (s *Store) windowsFor(trainerID int, day time.Weekday) []availability.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var windows []availability.Window
	for _, w := range s.windows {
		if w.TrainerID == trainerID && w.DayOfWeek == day {
			windows = append(windows, w)
		}
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })

	return windows
}
