package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/pkg/types"
)

func TestOverlaps(t *testing.T) {
	ts := func(s string) types.TimeString { return types.TimeString(s) }

	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"identical intervals", "10:00", "10:30", "10:00", "10:30", true},
		{"partial overlap", "10:00", "10:31", "10:30", "11:00", true},
		{"contained interval", "10:00", "11:00", "10:15", "10:45", true},
		{"back to back", "10:00", "10:30", "10:30", "11:00", false},
		{"back to back reversed", "10:30", "11:00", "10:00", "10:30", false},
		{"disjoint", "10:00", "10:30", "12:00", "12:30", false},
		{"one minute overlap", "10:29", "10:31", "10:30", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(ts(tt.aStart), ts(tt.aEnd), ts(tt.bStart), ts(tt.bEnd))
			assert.Equal(t, tt.expected, got)
			// Overlap is symmetric
			assert.Equal(t, tt.expected, Overlaps(ts(tt.bStart), ts(tt.bEnd), ts(tt.aStart), ts(tt.aEnd)))
		})
	}
}

func TestConflictsWith(t *testing.T) {
	res := func(start string, duration int, status ReservationStatus) *Reservation {
		return &Reservation{
			StartTime:       types.TimeString(start),
			DurationMinutes: duration,
			Status:          status,
		}
	}

	t.Run("empty list never conflicts", func(t *testing.T) {
		conflict, err := ConflictsWith("10:00", 30, nil)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("overlapping pending reservation conflicts", func(t *testing.T) {
		conflict, err := ConflictsWith("10:15", 30, []*Reservation{
			res("10:00", 30, StatusPending),
		})
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("back to back does not conflict", func(t *testing.T) {
		conflict, err := ConflictsWith("10:30", 30, []*Reservation{
			res("10:00", 30, StatusPublished),
		})
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("cancelled reservation is ignored", func(t *testing.T) {
		conflict, err := ConflictsWith("10:00", 30, []*Reservation{
			res("10:00", 30, StatusCancelled),
		})
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("reservation without start time is ignored", func(t *testing.T) {
		conflict, err := ConflictsWith("10:00", 30, []*Reservation{
			res("", 30, StatusPending),
		})
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("missing duration takes candidate duration", func(t *testing.T) {
		// Бронь 10:00 без длительности при кандидате на 60 минут
		// трактуется как [10:00, 11:00) и перекрывает кандидата 10:45.
		conflict, err := ConflictsWith("10:45", 60, []*Reservation{
			res("10:00", 0, StatusPending),
		})
		require.NoError(t, err)
		assert.True(t, conflict)

		// При кандидате на 30 минут та же бронь занимает [10:00, 10:30)
		// и не мешает кандидату 10:30.
		conflict, err = ConflictsWith("10:30", 30, []*Reservation{
			res("10:00", 0, StatusPending),
		})
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("candidate past midnight is an error", func(t *testing.T) {
		_, err := ConflictsWith("23:45", 30, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrTimeOverflow)
	})

	t.Run("reservation running into midnight still blocks", func(t *testing.T) {
		conflict, err := ConflictsWith("23:30", 15, []*Reservation{
			res("23:00", 90, StatusPublished),
		})
		require.NoError(t, err)
		assert.True(t, conflict)
	})
}
