package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	lastFilter   domain.DayReservationsFilter
}

func (s *stubReservationRepo) FindByDay(_ context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	s.lastFilter = filter

	result := make([]*domain.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		if filter.StaffID != nil && res.StaffID != *filter.StaffID {
			continue
		}
		if filter.ExcludeID != nil && res.ID == *filter.ExcludeID {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func reservationAt(id, staffID int64, start string, duration int) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		StaffID:         staffID,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusPublished,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			reservationAt(1, 7, "10:00", 30),
		},
	}
	svc := NewService(repo, noopLogger{})
	ctx := context.Background()

	t.Run("occupied slot", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:00", 30, 7)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("overlapping slot", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:15", 30, 7)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("back to back slot is free", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:30", 30, 7)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("other staff member is free", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:00", 30, 9)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("no preference is optimistic", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:00", 30, domain.NoPreferenceStaffID)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("repeated check gives same answer", func(t *testing.T) {
		first, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:15", 30, 7)
		require.NoError(t, err)
		second, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:15", 30, 7)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unparseable date means unavailable", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "02/06/2025", "10:00", 30, 7)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("unparseable time means unavailable", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "half past ten", 30, 7)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("non-positive duration means unavailable", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "10:00", 0, 7)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("slot past midnight means unavailable", func(t *testing.T) {
		available, err := svc.IsSlotAvailable(ctx, "2025-06-02", "23:45", 30, 9)
		require.NoError(t, err)
		assert.False(t, available)
	})
}

func TestIsSlotFreeForEdit(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			reservationAt(1, 7, "10:00", 30),
			reservationAt(2, 7, "11:00", 30),
		},
	}
	svc := NewService(repo, noopLogger{})
	ctx := context.Background()

	t.Run("edited reservation does not conflict with itself", func(t *testing.T) {
		free, err := svc.IsSlotFreeForEdit(ctx, 1, "2025-06-02", "10:00", 30, 7)
		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("moving onto another reservation conflicts", func(t *testing.T) {
		free, err := svc.IsSlotFreeForEdit(ctx, 1, "2025-06-02", "11:15", 30, 7)
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("missing schedule fields never block", func(t *testing.T) {
		free, err := svc.IsSlotFreeForEdit(ctx, 1, "", "", 0, 7)
		require.NoError(t, err)
		assert.True(t, free)

		free, err = svc.IsSlotFreeForEdit(ctx, 1, "2025-06-02", "10:00", 30, domain.NoPreferenceStaffID)
		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("present but unparseable fields block", func(t *testing.T) {
		free, err := svc.IsSlotFreeForEdit(ctx, 1, "not a date", "10:00", 30, 7)
		require.NoError(t, err)
		assert.False(t, free)
	})
}
