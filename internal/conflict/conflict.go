// Package conflict holds the admission rejection taxonomy shared by the
// scheduling ledgers and the lock keys naming each conflict domain.
package conflict

import (
	"errors"
	"fmt"
	"time"
)

// Reason identifies why a candidate commitment was rejected.
type Reason string

const (
	InvalidInterval     Reason = "invalid_interval"
	InvalidCapacity     Reason = "invalid_capacity"
	AvailabilityOverlap Reason = "availability_overlap"
	RoomDoubleBooked    Reason = "room_double_booked"
	TrainerDoubleBooked Reason = "trainer_double_booked"
	TrainerUnavailable  Reason = "trainer_unavailable"
	CapacityExceedsRoom Reason = "capacity_exceeds_room"
	ClassFull           Reason = "class_full"
	AlreadyRegistered   Reason = "already_registered"
	ClassNotFound       Reason = "class_not_found"
	ClassInPast         Reason = "class_in_past"
	RoomNotFound        Reason = "room_not_found"
)

var defaultMessages = map[Reason]string{
	InvalidInterval:     "start time must be before end time",
	InvalidCapacity:     "capacity must be positive",
	AvailabilityOverlap: "time slot overlaps with existing availability",
	RoomDoubleBooked:    "room is already booked at this time",
	TrainerDoubleBooked: "trainer is already teaching another class at this time",
	TrainerUnavailable:  "trainer is not available at this time",
	CapacityExceedsRoom: "class capacity exceeds room capacity",
	ClassFull:           "class is full",
	AlreadyRegistered:   "member is already registered for this class",
	ClassNotFound:       "class not found",
	ClassInPast:         "class date is in the past",
	RoomNotFound:        "room not found",
}

// Error is a rejection: an expected outcome the caller can recover from by
// retrying with different input. ConflictID names the existing record that
// blocked admission, when there is one.
type Error struct {
	Reason     Reason
	Message    string
	ConflictID int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Reason)
	}
	return e.Message
}

// Is matches any *Error with the same Reason, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

var (
	ErrInvalidInterval     = New(InvalidInterval)
	ErrInvalidCapacity     = New(InvalidCapacity)
	ErrAvailabilityOverlap = New(AvailabilityOverlap)
	ErrRoomDoubleBooked    = New(RoomDoubleBooked)
	ErrTrainerDoubleBooked = New(TrainerDoubleBooked)
	ErrTrainerUnavailable  = New(TrainerUnavailable)
	ErrCapacityExceedsRoom = New(CapacityExceedsRoom)
	ErrClassFull           = New(ClassFull)
	ErrAlreadyRegistered   = New(AlreadyRegistered)
	ErrClassNotFound       = New(ClassNotFound)
	ErrClassInPast         = New(ClassInPast)
	ErrRoomNotFound        = New(RoomNotFound)
)

func New(reason Reason) *Error {
	return &Error{Reason: reason, Message: defaultMessages[reason]}
}

func Newf(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// With returns a rejection that points at the conflicting record.
func With(reason Reason, conflictID int, format string, args ...interface{}) *Error {
	e := Newf(reason, format, args...)
	e.ConflictID = conflictID
	return e
}

// ReasonOf extracts the rejection reason from err, if err is a rejection.
func ReasonOf(err error) (Reason, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return "", false
}

func IsRejection(err error) bool {
	_, ok := ReasonOf(err)
	return ok
}

func RoomDateKey(roomID int, date time.Time) string {
	return fmt.Sprintf("room:%d:date:%s", roomID, date.Format("2006-01-02"))
}

func TrainerDateKey(trainerID int, date time.Time) string {
	return fmt.Sprintf("trainer:%d:date:%s", trainerID, date.Format("2006-01-02"))
}

func TrainerDayKey(trainerID int, day time.Weekday) string {
	return fmt.Sprintf("trainer:%d:dow:%d", trainerID, int(day))
}

func ClassKey(classID int) string {
	return fmt.Sprintf("class:%d", classID)
}
