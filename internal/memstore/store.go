// Package memstore keeps every ledger in process memory. Check-and-write
// sequences are serialised per conflict-domain key with keylock.Local, the
// same keys the Postgres store turns into advisory locks.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/keylock"
	"fitclub/internal/registration"
	"fitclub/internal/room"
)

type Store struct {
	mu      sync.RWMutex
	locks   *keylock.Local
	timeout time.Duration
	now     func() time.Time

	nextID        map[string]int
	rooms         map[int]room.Room
	windows       map[int]availability.Window
	classes       map[int]groupclass.Class
	registrations map[int]registration.Registration
}

// New returns an empty store. timeout bounds each atomic unit, lock waits
// included; zero means no bound.
func New(timeout time.Duration) *Store {
	return &Store{
		locks:         keylock.NewLocal(),
		timeout:       timeout,
		now:           time.Now,
		nextID:        make(map[string]int),
		rooms:         make(map[int]room.Room),
		windows:       make(map[int]availability.Window),
		classes:       make(map[int]groupclass.Class),
		registrations: make(map[int]registration.Registration),
	}
}

func (s *Store) Rooms() room.Repository { return roomRepo{s} }
func (s *Store) Availability() availability.Repository { return availabilityRepo{s} }
func (s *Store) Classes() groupclass.Repository { return classRepo{s} }
func (s *Store) Registrations() registration.Repository { return registrationRepo{s} }

// atomically holds keys while fn runs. fn stages its writes through tx;
// they become visible together once fn returns nil.
func (s *Store) atomically(ctx context.Context, keys []string, fn func(tx *txn) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	unlock, err := keylock.LockAll(ctx, s.locks, keys)
	if err != nil {
		return db.Classify(err)
	}
	defer unlock()

	tx := &txn{store: s}
	if err := fn(tx); err != nil {
		return db.Classify(err)
	}

	s.mu.Lock()
	for _, apply := range tx.writes {
		apply()
	}
	s.mu.Unlock()

	return nil
}

type txn struct {
	store  *Store
	writes []func()
}

func (t *txn) stage(apply func()) {
	t.writes = append(t.writes, apply)
}

// allocate reserves the next id of a table. Ids of rolled back units are
// not reused.
func (s *Store) allocate(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID[table]++
	return s.nextID[table]
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func sortClasses(classes []groupclass.Class) {
	sort.Slice(classes, func(i, j int) bool {
		if !classes[i].Date.Equal(classes[j].Date) {
			return classes[i].Date.Before(classes[j].Date)
		}
		if classes[i].Start != classes[j].Start {
			return classes[i].Start < classes[j].Start
		}
		return classes[i].ID < classes[j].ID
	})
}
