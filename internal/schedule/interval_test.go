package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	i, err := ParseInterval(start, end)
	require.NoError(t, err)
	return i
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{"touching end to start", [2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}, false},
		{"partial overlap", [2]string{"09:00", "10:00"}, [2]string{"09:30", "10:30"}, true},
		{"inner", [2]string{"08:00", "12:00"}, [2]string{"09:00", "10:00"}, true},
		{"identical", [2]string{"09:00", "10:00"}, [2]string{"09:00", "10:00"}, true},
		{"disjoint", [2]string{"06:00", "07:00"}, [2]string{"18:00", "19:00"}, false},
		{"one minute shared", [2]string{"09:00", "10:01"}, [2]string{"10:00", "11:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := iv(t, tt.a[0], tt.a[1])
			b := iv(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, Overlaps(a, b))
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_SymmetricAndReflexive(t *testing.T) {
	for s := Clock(0); s < MinutesPerDay; s += 45 {
		for e := s + 15; e <= MinutesPerDay; e += 90 {
			a := Interval{Start: s, End: e}
			assert.True(t, Overlaps(a, a))
			for _, b := range []Interval{{0, 60}, {600, 720}, {1380, 1440}} {
				assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
			}
		}
	}
}

func TestContains(t *testing.T) {
	window := iv(t, "08:00", "12:00")

	assert.True(t, Contains(window, iv(t, "09:00", "10:00")))
	assert.True(t, Contains(window, iv(t, "08:00", "12:00")))
	assert.True(t, Contains(window, iv(t, "11:00", "12:00")))
	assert.False(t, Contains(window, iv(t, "11:30", "12:30")))
	assert.False(t, Contains(window, iv(t, "13:00", "14:00")))
	assert.False(t, Contains(iv(t, "09:00", "10:00"), window))
}

func TestNewInterval_Invalid(t *testing.T) {
	_, err := NewInterval(600, 600)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(660, 600)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(-1, 600)
	assert.ErrorIs(t, err, ErrInvalidClock)

	assert.ErrorIs(t, Interval{}.Validate(), ErrInvalidInterval)

	i, err := NewInterval(0, MinutesPerDay)
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, i.Duration())
}

func TestFirstOverlap(t *testing.T) {
	existing := []Interval{iv(t, "06:00", "07:00"), iv(t, "09:00", "10:00"), iv(t, "09:30", "11:00")}

	assert.Equal(t, 1, FirstOverlap(iv(t, "09:45", "09:50"), existing))
	assert.Equal(t, -1, FirstOverlap(iv(t, "07:00", "09:00"), existing))
	assert.Equal(t, -1, FirstOverlap(iv(t, "07:00", "09:00"), nil))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(545), c)
	assert.Equal(t, "09:05", c.String())

	c, err = ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, Clock(MinutesPerDay), c)

	for _, bad := range []string{"", "9", "9:5", "25:00", "10:60", "ab:cd", "24:01"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidClock, bad)
	}
}

func TestClockJSON(t *testing.T) {
	i := Interval{Start: 480, End: 720}
	data, err := i.Start.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"08:00"`, string(data))

	var c Clock
	require.NoError(t, c.UnmarshalJSON([]byte(`"12:30"`)))
	assert.Equal(t, Clock(750), c)
	assert.Error(t, c.UnmarshalJSON([]byte(`750`)))
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"Monday": time.Monday,
		"sun":    time.Sunday,
		"1":      time.Monday,
		"7":      time.Sunday,
		" FRI ":  time.Friday,
	}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "0", "8", "mo", "funday"} {
		_, err := ParseWeekday(bad)
		assert.ErrorIs(t, err, ErrInvalidWeekday, bad)
	}
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("19/10/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	almaty := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 10, 18, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Today(now, almaty))
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), Today(now, nil))

	assert.Equal(t, 0, WeekOrder(time.Monday))
	assert.Equal(t, 6, WeekOrder(time.Sunday))
}
