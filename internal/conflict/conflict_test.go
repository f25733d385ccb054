package conflict

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := With(RoomDoubleBooked, 42, "room %d is booked 09:00-10:00", 3)

	assert.ErrorIs(t, err, ErrRoomDoubleBooked)
	assert.NotErrorIs(t, err, ErrTrainerDoubleBooked)
	assert.Equal(t, 42, err.ConflictID)
	assert.Equal(t, "room 3 is booked 09:00-10:00", err.Error())

	wrapped := fmt.Errorf("propose booking: %w", err)
	assert.ErrorIs(t, wrapped, ErrRoomDoubleBooked)
}

func TestReasonOf(t *testing.T) {
	reason, ok := ReasonOf(fmt.Errorf("register: %w", ErrClassFull))
	assert.True(t, ok)
	assert.Equal(t, ClassFull, reason)

	_, ok = ReasonOf(errors.New("connection refused"))
	assert.False(t, ok)
	assert.False(t, IsRejection(nil))
	assert.True(t, IsRejection(ErrAlreadyRegistered))
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "class is full", ErrClassFull.Error())
	assert.Equal(t, "custom_reason", (&Error{Reason: "custom_reason"}).Error())
}

func TestKeys(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "room:3:date:2026-10-19", RoomDateKey(3, date))
	assert.Equal(t, "trainer:7:date:2026-10-19", TrainerDateKey(7, date))
	assert.Equal(t, "trainer:7:dow:1", TrainerDayKey(7, time.Monday))
	assert.Equal(t, "class:9", ClassKey(9))
}
