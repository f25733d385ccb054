package schedule

import (
	"errors"
	"fmt"
)

// MinutesPerDay is the exclusive upper bound of a Clock; 24:00 closes a window at midnight.
const MinutesPerDay = 24 * 60

var (
	ErrInvalidInterval = errors.New("interval start must be before its end")
	ErrInvalidClock    = errors.New("time of day out of range")
)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

func NewClock(hour, minute int) (Clock, error) {
	c := Clock(hour*60 + minute)
	if hour < 0 || minute < 0 || minute > 59 || !c.Valid() {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return c, nil
}

func (c Clock) Valid() bool {
	return c >= 0 && c <= MinutesPerDay
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Interval is a half-open range of the day, [Start, End).
type Interval struct {
	Start Clock `json:"start_time"`
	End   Clock `json:"end_time"`
}

func NewInterval(start, end Clock) (Interval, error) {
	i := Interval{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate reports ErrInvalidInterval for empty, inverted or out-of-day intervals.
func (i Interval) Validate() error {
	if !i.Start.Valid() || !i.End.Valid() {
		return fmt.Errorf("%w: %d-%d", ErrInvalidClock, int(i.Start), int(i.End))
	}
	if i.Start >= i.End {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

func (i Interval) Duration() int {
	return int(i.End - i.Start)
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Overlaps reports whether a and b share any minute. Touching intervals,
// where one ends exactly when the other starts, do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner Interval) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// FirstOverlap returns the index of the first interval in existing that
// overlaps candidate, or -1.
func FirstOverlap(candidate Interval, existing []Interval) int {
	for idx, e := range existing {
		if Overlaps(candidate, e) {
			return idx
		}
	}
	return -1
}
