package registration

import (
	"context"
	"errors"
	"time"

	"fitclub/internal/conflict"
	"fitclub/internal/schedule"
)

var ErrInvalidMember = errors.New("invalid member id")

type Service interface {
	ProposeRegistration(ctx context.Context, classID, memberID int) (*Registration, error)
	ListByMember(ctx context.Context, memberID int) ([]Enrollment, error)
}

type Option func(*service)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location, opts ...Option) Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &service{repo: repo, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProposeRegistration counts and inserts while holding the class key, so
// concurrent attempts for the last spots cannot both succeed.
func (s *service) ProposeRegistration(ctx context.Context, classID, memberID int) (*Registration, error) {
	if memberID <= 0 {
		return nil, ErrInvalidMember
	}
	if classID <= 0 {
		return nil, conflict.Newf(conflict.ClassNotFound, "class #%d does not exist", classID)
	}

	today := schedule.Today(s.now(), s.loc)

	var created *Registration
	err := s.repo.Atomically(ctx, []string{conflict.ClassKey(classID)}, func(l Ledger) error {
		class, found, err := l.GetClass(ctx, classID)
		if err != nil {
			return err
		}
		if !found {
			return conflict.Newf(conflict.ClassNotFound, "class #%d does not exist", classID)
		}
		if class.Date.Before(today) {
			return conflict.With(conflict.ClassInPast, classID, "class #%d took place on %s",
				classID, class.Date.Format(schedule.DateLayout))
		}

		registered, err := l.IsRegistered(ctx, classID, memberID)
		if err != nil {
			return err
		}
		if registered {
			return conflict.With(conflict.AlreadyRegistered, classID,
				"member #%d is already registered for class #%d", memberID, classID)
		}

		count, err := l.CountForClass(ctx, classID)
		if err != nil {
			return err
		}
		if count >= class.Capacity {
			return conflict.With(conflict.ClassFull, classID,
				"class #%d is full (%d of %d spots taken)", classID, count, class.Capacity)
		}

		created, err = l.CreateRegistration(ctx, classID, memberID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Enrollment, error) {
	if memberID <= 0 {
		return nil, ErrInvalidMember
	}
	return s.repo.ListByMember(ctx, memberID)
}
