package memstore

import (
	"context"
	"sort"

	"fitclub/internal/groupclass"
	"fitclub/internal/registration"
)

type registrationRepo struct {
	s *Store
}

func (r registrationRepo) Atomically(ctx context.Context, keys []string, fn func(registration.Ledger) error) error {
	return r.s.atomically(ctx, keys, func(tx *txn) error {
		return fn(registrationLedger{tx})
	})
}

func (r registrationRepo) ListByMember(ctx context.Context, memberID int) ([]registration.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	enrollments := []registration.Enrollment{}
	for _, reg := range r.s.registrations {
		if reg.MemberID != memberID {
			continue
		}
		c := r.s.classes[reg.ClassID]
		enrollments = append(enrollments, registration.Enrollment{
			RegistrationID: reg.ID,
			ClassID:        c.ID,
			ClassName:      c.Name,
			RoomID:         c.RoomID,
			TrainerID:      c.TrainerID,
			Date:           c.Date,
			Start:          c.Start,
			End:            c.End,
			RegisteredAt:   reg.CreatedAt,
		})
	}
	sort.Slice(enrollments, func(i, j int) bool {
		a, b := enrollments[i], enrollments[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.ClassID < b.ClassID
	})

	return enrollments, nil
}

type registrationLedger struct {
	tx *txn
}

func (l registrationLedger) GetClass(ctx context.Context, classID int) (*groupclass.Class, bool, error) {
	s := l.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.classes[classID]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (l registrationLedger) IsRegistered(ctx context.Context, classID, memberID int) (bool, error) {
	s := l.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, reg := range s.registrations {
		if reg.ClassID == classID && reg.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (l registrationLedger) CountForClass(ctx context.Context, classID int) (int, error) {
	s := l.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, reg := range s.registrations {
		if reg.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func (l registrationLedger) CreateRegistration(ctx context.Context, classID, memberID int) (*registration.Registration, error) {
	s := l.tx.store
	reg := registration.Registration{
		ID:        s.allocate("registrations"),
		ClassID:   classID,
		MemberID:  memberID,
		CreatedAt: s.timestamp(),
	}
	l.tx.stage(func() { s.registrations[reg.ID] = reg })
	return &reg, nil
}
