package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"00:00", false},
		{"09:30", false},
		{"23:59", false},
		{"24:00", true},
		{"9:30", true},
		{"09:60", true},
		{"09:30:00", true},
		{"", true},
		{"abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		ts, err := TimeString("10:30").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), ts)
	})

	t.Run("backward", func(t *testing.T) {
		ts, err := TimeString("10:30").AddMinutes(-30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("crossing midnight is an error", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOverflow)
	})

	t.Run("exactly midnight is an error", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOverflow)
	})

	t.Run("last minute of day is fine", func(t *testing.T) {
		ts, err := TimeString("23:30").AddMinutes(29)
		require.NoError(t, err)
		assert.Equal(t, TimeString("23:59"), ts)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15:27")))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:05"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
