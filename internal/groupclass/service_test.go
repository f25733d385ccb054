package groupclass

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitclub/internal/availability"
	"fitclub/internal/conflict"
	"fitclub/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository runs Atomically callbacks against its embedded MockLedger.
type MockRepository struct {
	mock.Mock
	Ledger *MockLedger
}

func (m *MockRepository) Atomically(ctx context.Context, keys []string, fn func(Ledger) error) error {
	args := m.Called(ctx, keys)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Ledger)
}

func (m *MockRepository) GetClass(ctx context.Context, id int) (*Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockRepository) ListFrom(ctx context.Context, from time.Time) ([]UpcomingClass, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]UpcomingClass), args.Error(1)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) RoomCapacity(ctx context.Context, roomID int) (int, bool, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockLedger) ClassesInRoom(ctx context.Context, roomID int, date time.Time) ([]Class, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Class), args.Error(1)
}

func (m *MockLedger) ClassesForTrainer(ctx context.Context, trainerID int, date time.Time) ([]Class, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Class), args.Error(1)
}

func (m *MockLedger) TrainerWindows(ctx context.Context, trainerID int, day time.Weekday) ([]availability.Window, error) {
	args := m.Called(ctx, trainerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.Window), args.Error(1)
}

func (m *MockLedger) CreateClass(ctx context.Context, c Class) (*Class, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

// 2026-10-19 is a Monday.
var (
	fixedNow   = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	classDate  = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	morning    = schedule.Interval{Start: 9 * 60, End: 10 * 60}
	mondayOpen = []availability.Window{{ID: 11, TrainerID: 2, DayOfWeek: time.Monday, Start: 8 * 60, End: 12 * 60}}
)

func newTestService() (Service, *MockRepository, *MockLedger) {
	ledger := new(MockLedger)
	repo := &MockRepository{Ledger: ledger}
	svc := NewService(repo, time.UTC, WithClock(func() time.Time { return fixedNow }))
	return svc, repo, ledger
}

func validRequest() BookingRequest {
	return BookingRequest{Name: "Morning Yoga", RoomID: 1, TrainerID: 2, Date: classDate, Interval: morning, Capacity: 10}
}

func TestService_ProposeBooking(t *testing.T) {
	svc, repo, ledger := newTestService()

	repo.On("Atomically", mock.Anything, []string{
		conflict.RoomDateKey(1, classDate),
		conflict.TrainerDateKey(2, classDate),
	}).Return(nil)
	ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
	ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return([]Class{
		{ID: 5, RoomID: 1, Start: 10 * 60, End: 11 * 60},
	}, nil)
	ledger.On("TrainerWindows", mock.Anything, 2, time.Monday).Return(mondayOpen, nil)
	ledger.On("ClassesForTrainer", mock.Anything, 2, classDate).Return([]Class{}, nil)
	ledger.On("CreateClass", mock.Anything, Class{
		Name: "Morning Yoga", RoomID: 1, TrainerID: 2, Date: classDate, Start: morning.Start, End: morning.End, Capacity: 10,
	}).Return(&Class{ID: 6}, nil)

	c, err := svc.ProposeBooking(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 6, c.ID)
	repo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestService_ProposeBooking_DefaultName(t *testing.T) {
	svc, repo, ledger := newTestService()

	repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
	ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
	ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return(nil, nil)
	ledger.On("TrainerWindows", mock.Anything, 2, time.Monday).Return(mondayOpen, nil)
	ledger.On("ClassesForTrainer", mock.Anything, 2, classDate).Return(nil, nil)
	ledger.On("CreateClass", mock.Anything, mock.MatchedBy(func(c Class) bool {
		return c.Name == DefaultName
	})).Return(&Class{ID: 1, Name: DefaultName}, nil)

	req := validRequest()
	req.Name = "   "
	c, err := svc.ProposeBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, DefaultName, c.Name)
}

func TestService_ProposeBooking_InputRejections(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BookingRequest)
		want   error
	}{
		{"empty interval", func(r *BookingRequest) { r.Interval = schedule.Interval{Start: 600, End: 600} }, conflict.ErrInvalidInterval},
		{"reversed interval", func(r *BookingRequest) { r.Interval = schedule.Interval{Start: 660, End: 600} }, conflict.ErrInvalidInterval},
		{"zero capacity", func(r *BookingRequest) { r.Capacity = 0 }, conflict.ErrInvalidCapacity},
		{"yesterday", func(r *BookingRequest) { r.Date = fixedNow.AddDate(0, 0, -1) }, conflict.ErrClassInPast},
		{"missing trainer", func(r *BookingRequest) { r.TrainerID = 0 }, ErrInvalidTrainer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			req := validRequest()
			tt.modify(&req)

			c, err := svc.ProposeBooking(context.Background(), req)

			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Atomically", mock.Anything, mock.Anything)
		})
	}
}

func TestService_ProposeBooking_TodayIsAllowed(t *testing.T) {
	svc, repo, ledger := newTestService()
	today := schedule.DateOf(fixedNow)

	repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
	ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
	ledger.On("ClassesInRoom", mock.Anything, 1, today).Return(nil, nil)
	ledger.On("TrainerWindows", mock.Anything, 2, today.Weekday()).Return([]availability.Window{
		{ID: 1, TrainerID: 2, DayOfWeek: today.Weekday(), Start: 0, End: schedule.MinutesPerDay},
	}, nil)
	ledger.On("ClassesForTrainer", mock.Anything, 2, today).Return(nil, nil)
	ledger.On("CreateClass", mock.Anything, mock.Anything).Return(&Class{ID: 1}, nil)

	req := validRequest()
	req.Date = fixedNow
	_, err := svc.ProposeBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestService_ProposeBooking_RoomChecks(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(0, false, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrRoomNotFound)
	})

	t.Run("capacity exceeds room", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(5, true, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrCapacityExceedsRoom)
		ledger.AssertNotCalled(t, "ClassesInRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("room double booked", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
		ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return([]Class{
			{ID: 8, RoomID: 1, Start: 9*60 + 30, End: 11 * 60},
		}, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrRoomDoubleBooked)
		var rej *conflict.Error
		require.True(t, errors.As(err, &rej))
		assert.Equal(t, 8, rej.ConflictID)
		ledger.AssertNotCalled(t, "TrainerWindows", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_ProposeBooking_TrainerChecks(t *testing.T) {
	t.Run("no window on that weekday", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
		ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return(nil, nil)
		ledger.On("TrainerWindows", mock.Anything, 2, time.Monday).Return(nil, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrTrainerUnavailable)
	})

	t.Run("window only partially covers", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
		ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return(nil, nil)
		ledger.On("TrainerWindows", mock.Anything, 2, time.Monday).Return([]availability.Window{
			{ID: 1, DayOfWeek: time.Monday, Start: 9*60 + 30, End: 12 * 60},
		}, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrTrainerUnavailable)
	})

	t.Run("trainer double booked", func(t *testing.T) {
		svc, repo, ledger := newTestService()
		repo.On("Atomically", mock.Anything, mock.Anything).Return(nil)
		ledger.On("RoomCapacity", mock.Anything, 1).Return(20, true, nil)
		ledger.On("ClassesInRoom", mock.Anything, 1, classDate).Return(nil, nil)
		ledger.On("TrainerWindows", mock.Anything, 2, time.Monday).Return(mondayOpen, nil)
		ledger.On("ClassesForTrainer", mock.Anything, 2, classDate).Return([]Class{
			{ID: 9, RoomID: 3, TrainerID: 2, Start: 8 * 60, End: 9*60 + 15},
		}, nil)

		_, err := svc.ProposeBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, conflict.ErrTrainerDoubleBooked)
		var rej *conflict.Error
		require.True(t, errors.As(err, &rej))
		assert.Equal(t, 9, rej.ConflictID)
		ledger.AssertNotCalled(t, "CreateClass", mock.Anything, mock.Anything)
	})
}

func TestService_ListUpcoming(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("ListFrom", mock.Anything, schedule.DateOf(fixedNow)).Return([]UpcomingClass{
		{Class: Class{ID: 1, Capacity: 10}, Registered: 3},
		{Class: Class{ID: 2, Capacity: 2}, Registered: 2},
	}, nil)

	all, err := svc.ListUpcoming(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 7, all[0].SpotsLeft)
	assert.Equal(t, 0, all[1].SpotsLeft)

	available, err := svc.ListUpcoming(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].ID)
}

func TestService_GetClass(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetClass", mock.Anything, 4).Return(nil, ErrClassNotFound)

	_, err := svc.GetClass(context.Background(), 4)
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = svc.GetClass(context.Background(), -1)
	assert.ErrorIs(t, err, ErrClassNotFound)
}
