package groupclass

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitclub/internal/conflict"
	"fitclub/internal/schedule"
)

var (
	ErrClassNotFound  = errors.New("class not found")
	ErrInvalidTrainer = errors.New("invalid trainer id")
)

type Service interface {
	ProposeBooking(ctx context.Context, req BookingRequest) (*Class, error)
	GetClass(ctx context.Context, id int) (*Class, error)
	ListUpcoming(ctx context.Context, onlyAvailable bool) ([]UpcomingClass, error)
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

// NewService evaluates "today" in loc, the club's time zone.
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

func (s *service) today() time.Time {
	return schedule.Today(s.now(), s.loc)
}

// ProposeBooking admits the class if the room exists and is large enough,
// the room is free, the trainer declared availability covering the
// interval, and the trainer is not teaching elsewhere at that time. The
// checks run in that order, so the first failing one names the rejection.
func (s *service) ProposeBooking(ctx context.Context, req BookingRequest) (*Class, error) {
	if err := req.Interval.Validate(); err != nil {
		return nil, conflict.Newf(conflict.InvalidInterval, "%v", err)
	}
	if req.Capacity <= 0 {
		return nil, conflict.Newf(conflict.InvalidCapacity, "capacity must be positive, got %d", req.Capacity)
	}
	if req.TrainerID <= 0 {
		return nil, ErrInvalidTrainer
	}

	date := schedule.DateOf(req.Date)
	if date.Before(s.today()) {
		return nil, conflict.Newf(conflict.ClassInPast, "cannot book a class on %s, it is in the past",
			date.Format(schedule.DateLayout))
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultName
	}

	keys := []string{
		conflict.RoomDateKey(req.RoomID, date),
		conflict.TrainerDateKey(req.TrainerID, date),
	}

	var created *Class
	err := s.repo.Atomically(ctx, keys, func(l Ledger) error {
		if err := checkRoom(ctx, l, req, date); err != nil {
			return err
		}
		if err := checkTrainer(ctx, l, req, date); err != nil {
			return err
		}

		var err error
		created, err = l.CreateClass(ctx, Class{
			Name:      name,
			RoomID:    req.RoomID,
			TrainerID: req.TrainerID,
			Date:      date,
			Start:     req.Interval.Start,
			End:       req.Interval.End,
			Capacity:  req.Capacity,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func checkRoom(ctx context.Context, l Ledger, req BookingRequest, date time.Time) error {
	roomCapacity, found, err := l.RoomCapacity(ctx, req.RoomID)
	if err != nil {
		return err
	}
	if !found {
		return conflict.Newf(conflict.RoomNotFound, "room #%d does not exist", req.RoomID)
	}
	if req.Capacity > roomCapacity {
		return conflict.With(conflict.CapacityExceedsRoom, req.RoomID,
			"class capacity %d exceeds room #%d capacity %d", req.Capacity, req.RoomID, roomCapacity)
	}

	inRoom, err := l.ClassesInRoom(ctx, req.RoomID, date)
	if err != nil {
		return err
	}
	for _, c := range inRoom {
		if schedule.Overlaps(c.Interval(), req.Interval) {
			return conflict.With(conflict.RoomDoubleBooked, c.ID,
				"room #%d is already booked on %s %s by class #%d",
				req.RoomID, date.Format(schedule.DateLayout), c.Interval(), c.ID)
		}
	}

	return nil
}

func checkTrainer(ctx context.Context, l Ledger, req BookingRequest, date time.Time) error {
	windows, err := l.TrainerWindows(ctx, req.TrainerID, date.Weekday())
	if err != nil {
		return err
	}

	covered := false
	for _, w := range windows {
		if schedule.Contains(w.Interval(), req.Interval) {
			covered = true
			break
		}
	}
	if !covered {
		return conflict.Newf(conflict.TrainerUnavailable,
			"trainer #%d has no availability covering %s on %s",
			req.TrainerID, req.Interval, date.Weekday())
	}

	classes, err := l.ClassesForTrainer(ctx, req.TrainerID, date)
	if err != nil {
		return err
	}
	for _, c := range classes {
		if schedule.Overlaps(c.Interval(), req.Interval) {
			return conflict.With(conflict.TrainerDoubleBooked, c.ID,
				"trainer #%d already teaches class #%d on %s %s",
				req.TrainerID, c.ID, date.Format(schedule.DateLayout), c.Interval())
		}
	}

	return nil
}

func (s *service) GetClass(ctx context.Context, id int) (*Class, error) {
	if id <= 0 {
		return nil, ErrClassNotFound
	}
	return s.repo.GetClass(ctx, id)
}

// ListUpcoming lists classes from today on. With onlyAvailable, full
// classes are left out.
func (s *service) ListUpcoming(ctx context.Context, onlyAvailable bool) ([]UpcomingClass, error) {
	classes, err := s.repo.ListFrom(ctx, s.today())
	if err != nil {
		return nil, err
	}

	result := make([]UpcomingClass, 0, len(classes))
	for _, c := range classes {
		c.SpotsLeft = c.Capacity - c.Registered
		if c.SpotsLeft < 0 {
			c.SpotsLeft = 0
		}
		if onlyAvailable && c.SpotsLeft == 0 {
			continue
		}
		result = append(result, c)
	}

	return result, nil
}
