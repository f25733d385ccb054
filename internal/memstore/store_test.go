package memstore

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/conflict"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/registration"
	"fitclub/internal/room"
	"fitclub/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms(t *testing.T) {
	store := New(0)
	repo := store.Rooms()
	ctx := context.Background()

	created, err := repo.CreateRoom(ctx, "Studio A", 20)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	_, err = repo.CreateRoom(ctx, "Studio A", 10)
	assert.ErrorIs(t, err, room.ErrRoomNameTaken)

	_, err = repo.CreateRoom(ctx, "Hall", 50)
	require.NoError(t, err)

	rooms, err := repo.GetAllRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Studio A", rooms[0].Name)

	_, err = repo.GetRoomByID(ctx, 9)
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestAtomically_RejectedWritesAreDiscarded(t *testing.T) {
	store := New(0)
	repo := store.Availability()
	ctx := context.Background()

	err := repo.Atomically(ctx, []string{"trainer:1:dow:1"}, func(l availability.Ledger) error {
		_, err := l.CreateWindow(ctx, availability.Window{TrainerID: 1, DayOfWeek: time.Monday, Start: 540, End: 600})
		require.NoError(t, err)
		return conflict.ErrAvailabilityOverlap
	})
	assert.ErrorIs(t, err, conflict.ErrAvailabilityOverlap)

	windows, err := repo.ListByTrainer(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestAtomically_LockTimeoutIsTransient(t *testing.T) {
	store := New(20 * time.Millisecond)
	ctx := context.Background()

	unlock, err := store.locks.Lock(ctx, "class:1")
	require.NoError(t, err)
	defer unlock()

	err = store.Registrations().Atomically(ctx, []string{"class:1"}, func(registration.Ledger) error {
		t.Fatal("must not run without the lock")
		return nil
	})
	assert.ErrorIs(t, err, db.ErrTransient)
}

// Any sequence of proposals leaves no two windows of a trainer and weekday
// overlapping.
func TestAvailability_NoOverlapAfterRandomProposals(t *testing.T) {
	store := New(0)
	svc := availability.NewService(store.Availability())
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		start := schedule.Clock(rng.Intn(schedule.MinutesPerDay - 30))
		end := start + schedule.Clock(15+rng.Intn(120))
		if end > schedule.MinutesPerDay {
			end = schedule.MinutesPerDay
		}
		day := time.Weekday(rng.Intn(2))

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ProposeWindow(ctx, 1, day, schedule.Interval{Start: start, End: end})
			if err != nil {
				assert.ErrorIs(t, err, conflict.ErrAvailabilityOverlap)
			}
		}()
	}
	wg.Wait()

	windows, err := store.Availability().ListByTrainer(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, windows)

	for i := range windows {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].DayOfWeek != windows[j].DayOfWeek {
				continue
			}
			assert.False(t, schedule.Overlaps(windows[i].Interval(), windows[j].Interval()),
				"windows #%d and #%d overlap", windows[i].ID, windows[j].ID)
		}
	}
}

func TestClasses_ListFromCountsRegistrations(t *testing.T) {
	store := New(0)
	ctx := context.Background()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	var classID int
	err := store.Classes().Atomically(ctx, nil, func(l groupclass.Ledger) error {
		c, err := l.CreateClass(ctx, groupclass.Class{Name: "Spin", RoomID: 1, TrainerID: 2, Date: day, Start: 540, End: 600, Capacity: 5})
		classID = c.ID
		return err
	})
	require.NoError(t, err)

	err = store.Registrations().Atomically(ctx, nil, func(l registration.Ledger) error {
		_, err := l.CreateRegistration(ctx, classID, 9)
		return err
	})
	require.NoError(t, err)

	upcoming, err := store.Classes().ListFrom(ctx, day)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, upcoming[0].Registered)

	upcoming, err = store.Classes().ListFrom(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	enrollments, err := store.Registrations().ListByMember(ctx, 9)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "Spin", enrollments[0].ClassName)
}
