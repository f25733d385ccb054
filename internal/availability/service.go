package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"fitclub/internal/conflict"
	"fitclub/internal/schedule"
)

var (
	ErrInvalidTrainer = errors.New("invalid trainer id")
	ErrInvalidDay     = errors.New("invalid day of week")
)

type Service interface {
	ProposeWindow(ctx context.Context, trainerID int, day time.Weekday, interval schedule.Interval) (*Window, error)
	ListWindows(ctx context.Context, trainerID int) ([]Window, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ProposeWindow admits a new weekly window unless it overlaps one the
// trainer already declared for the same weekday.
func (s *service) ProposeWindow(ctx context.Context, trainerID int, day time.Weekday, interval schedule.Interval) (*Window, error) {
	if trainerID <= 0 {
		return nil, ErrInvalidTrainer
	}
	if !schedule.ValidWeekday(day) {
		return nil, ErrInvalidDay
	}
	if err := interval.Validate(); err != nil {
		return nil, conflict.Newf(conflict.InvalidInterval, "%v", err)
	}

	var created *Window
	err := s.repo.Atomically(ctx, []string{conflict.TrainerDayKey(trainerID, day)}, func(l Ledger) error {
		existing, err := l.WindowsFor(ctx, trainerID, day)
		if err != nil {
			return err
		}

		intervals := make([]schedule.Interval, len(existing))
		for i, w := range existing {
			intervals[i] = w.Interval()
		}
		if idx := schedule.FirstOverlap(interval, intervals); idx >= 0 {
			w := existing[idx]
			return conflict.With(conflict.AvailabilityOverlap, w.ID,
				"%s %s overlaps existing availability #%d (%s)", day, interval, w.ID, w.Interval())
		}

		created, err = l.CreateWindow(ctx, Window{
			TrainerID: trainerID,
			DayOfWeek: day,
			Start:     interval.Start,
			End:       interval.End,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *service) ListWindows(ctx context.Context, trainerID int) ([]Window, error) {
	if trainerID <= 0 {
		return nil, ErrInvalidTrainer
	}

	windows, err := s.repo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if a.DayOfWeek != b.DayOfWeek {
			return schedule.WeekOrder(a.DayOfWeek) < schedule.WeekOrder(b.DayOfWeek)
		}
		return a.Start < b.Start
	})

	return windows, nil
}
