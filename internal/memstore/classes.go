package memstore

import (
	"context"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/groupclass"
)

type classRepo struct {
	s *Store
}

func (r classRepo) Atomically(ctx context.Context, keys []string, fn func(groupclass.Ledger) error) error {
	return r.s.atomically(ctx, keys, func(tx *txn) error {
		return fn(classLedger{tx})
	})
}

func (r classRepo) GetClass(ctx context.Context, id int) (*groupclass.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.classes[id]
	if !ok {
		return nil, groupclass.ErrClassNotFound
	}
	return &c, nil
}

func (r classRepo) ListFrom(ctx context.Context, from time.Time) ([]groupclass.UpcomingClass, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var classes []groupclass.Class
	for _, c := range r.s.classes {
		if !c.Date.Before(from) {
			classes = append(classes, c)
		}
	}
	sortClasses(classes)

	counts := make(map[int]int)
	for _, reg := range r.s.registrations {
		counts[reg.ClassID]++
	}

	upcoming := make([]groupclass.UpcomingClass, 0, len(classes))
	for _, c := range classes {
		upcoming = append(upcoming, groupclass.UpcomingClass{Class: c, Registered: counts[c.ID]})
	}

	return upcoming, nil
}

type classLedger struct {
	tx *txn
}

func (l classLedger) RoomCapacity(ctx context.Context, roomID int) (int, bool, error) {
	s := l.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, ok := s.rooms[roomID]
	if !ok {
		return 0, false, nil
	}
	return rm.Capacity, true, nil
}

func (l classLedger) ClassesInRoom(ctx context.Context, roomID int, date time.Time) ([]groupclass.Class, error) {
	return l.tx.store.classesWhere(func(c groupclass.Class) bool {
		return c.RoomID == roomID && c.Date.Equal(date)
	}), nil
}

func (l classLedger) ClassesForTrainer(ctx context.Context, trainerID int, date time.Time) ([]groupclass.Class, error) {
	return l.tx.store.classesWhere(func(c groupclass.Class) bool {
		return c.TrainerID == trainerID && c.Date.Equal(date)
	}), nil
}

func (l classLedger) TrainerWindows(ctx context.Context, trainerID int, day time.Weekday) ([]availability.Window, error) {
	return l.tx.store.windowsFor(trainerID, day), nil
}

func (l classLedger) CreateClass(ctx context.Context, c groupclass.Class) (*groupclass.Class, error) {
	s := l.tx.store
	c.ID = s.allocate("classes")
	c.CreatedAt = s.timestamp()
	l.tx.stage(func() { s.classes[c.ID] = c })
	return &c, nil
}

func (s *Store) classesWhere(match func(groupclass.Class) bool) []groupclass.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var classes []groupclass.Class
	for _, c := range s.classes {
		if match(c) {
			classes = append(classes, c)
		}
	}
	sortClasses(classes)

	return classes
}
