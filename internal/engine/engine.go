// Package engine is the single admission gate for time-bound and counted
// commitments. It routes each candidate to the ledger that owns its
// conflict domain and reports a tagged outcome.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/conflict"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"
	"fitclub/internal/registration"
	"fitclub/internal/schedule"
)

var ErrUnknownCandidate = errors.New("unknown candidate")

type Kind string

const (
	KindWindow       Kind = "window"
	KindBooking      Kind = "booking"
	KindRegistration Kind = "registration"
)

// Candidate is a proposed commitment. The set of candidates is closed.
type Candidate interface {
	Kind() Kind
	candidate()
}

type WindowCandidate struct {
	TrainerID int
	Day       time.Weekday
	Interval  schedule.Interval
}

type BookingCandidate struct {
	groupclass.BookingRequest
}

type RegistrationCandidate struct {
	ClassID  int
	MemberID int
}

func (WindowCandidate) Kind() Kind       { return KindWindow }
func (BookingCandidate) Kind() Kind      { return KindBooking }
func (RegistrationCandidate) Kind() Kind { return KindRegistration }

func (WindowCandidate) candidate()       {}
func (BookingCandidate) candidate()      {}
func (RegistrationCandidate) candidate() {}

// Outcome is either Accepted, carrying the new record, or Rejected,
// carrying the first failing reason.
type Outcome struct {
	Accepted   bool
	ID         int
	Record     any
	Reason     conflict.Reason
	Message    string
	ConflictID int
}

func Accepted(id int, record any) Outcome {
	return Outcome{Accepted: true, ID: id, Record: record}
}

func Rejected(rej *conflict.Error) Outcome {
	return Outcome{Reason: rej.Reason, Message: rej.Message, ConflictID: rej.ConflictID}
}

func (o Outcome) String() string {
	if o.Accepted {
		return fmt.Sprintf("accepted #%d", o.ID)
	}
	return fmt.Sprintf("rejected %s: %s", o.Reason, o.Message)
}

type Engine struct {
	windows       availability.Service
	bookings      groupclass.Service
	registrations registration.Service
}

func New(windows availability.Service, bookings groupclass.Service, registrations registration.Service) *Engine {
	return &Engine{
		windows:       windows,
		bookings:      bookings,
		registrations: registrations,
	}
}

// Admit decides a candidate. Rejections come back as an Outcome with a nil
// error; a non-nil error means the store failed, and wraps db.ErrTransient
// when resubmitting the same candidate may succeed. Admit never retries.
func (e *Engine) Admit(ctx context.Context, c Candidate) (Outcome, error) {
	start := time.Now()

	var (
		id     int
		record any
		err    error
	)

	switch c := c.(type) {
	case WindowCandidate:
		var w *availability.Window
		if w, err = e.windows.ProposeWindow(ctx, c.TrainerID, c.Day, c.Interval); err == nil {
			id, record = w.ID, w
		}
	case BookingCandidate:
		var cls *groupclass.Class
		if cls, err = e.bookings.ProposeBooking(ctx, c.BookingRequest); err == nil {
			id, record = cls.ID, cls
		}
	case RegistrationCandidate:
		var reg *registration.Registration
		if reg, err = e.registrations.ProposeRegistration(ctx, c.ClassID, c.MemberID); err == nil {
			id, record = reg.ID, reg
		}
	default:
		return Outcome{}, fmt.Errorf("%w: %T", ErrUnknownCandidate, c)
	}

	var outcome Outcome
	var rej *conflict.Error
	switch {
	case err == nil:
		outcome = Accepted(id, record)
	case errors.As(err, &rej):
		outcome = Rejected(rej)
		err = nil
	}

	observe(c.Kind(), outcome, err, time.Since(start))
	return outcome, err
}

func observe(kind Kind, o Outcome, err error, elapsed time.Duration) {
	switch {
	case err != nil:
		status := "error"
		if errors.Is(err, db.ErrTransient) {
			status = "transient"
		}
		metrics.RecordAdmission(string(kind), status, "", elapsed.Seconds())
		logger.Error("Admission failed", "kind", kind, "status", status, "error", err)
	case o.Accepted:
		metrics.RecordAdmission(string(kind), "accepted", "", elapsed.Seconds())
		logger.Info("Admission accepted", "kind", kind, "id", o.ID, "duration_ms", elapsed.Milliseconds())
	default:
		metrics.RecordAdmission(string(kind), "rejected", string(o.Reason), elapsed.Seconds())
		logger.Info("Admission rejected", "kind", kind, "reason", o.Reason, "conflict_id", o.ConflictID, "message", o.Message)
	}
}
