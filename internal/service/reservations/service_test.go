package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/internal/domain"
	reservationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/reservation"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	"github.com/zohoustanley/barbeshop/internal/service/reservations/models"
	"github.com/zohoustanley/barbeshop/pkg/ptr"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

const (
	managerID = int64(1)
	staffID   = int64(2)
)

type stubReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updates      map[int64]domain.ScheduleUpdate
	cancelled    []int64
}

func newStubReservationRepo(reservations ...*domain.Reservation) *stubReservationRepo {
	repo := &stubReservationRepo{
		reservations: make(map[int64]*domain.Reservation),
		updates:      make(map[int64]domain.ScheduleUpdate),
	}
	for _, res := range reservations {
		repo.reservations[res.ID] = res
	}
	return repo
}

func (s *stubReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (s *stubReservationRepo) FindByDay(_ context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if !res.Date.Equal(filter.Date) {
			continue
		}
		if filter.StaffID != nil && res.StaffID != *filter.StaffID {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *stubReservationRepo) UpdateSchedule(_ context.Context, id int64, schedule domain.ScheduleUpdate) error {
	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	s.updates[id] = schedule
	if schedule.Date != nil {
		res.Date = *schedule.Date
	}
	if schedule.StartTime != nil {
		res.StartTime = *schedule.StartTime
	}
	if schedule.DurationMinutes != nil {
		res.DurationMinutes = *schedule.DurationMinutes
	}
	if schedule.StaffID != nil {
		res.StaffID = *schedule.StaffID
	}
	if schedule.Status != nil {
		res.Status = *schedule.Status
	}
	return nil
}

func (s *stubReservationRepo) Cancel(_ context.Context, id int64) error {
	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = domain.StatusCancelled
	s.cancelled = append(s.cancelled, id)
	return nil
}

type stubIdentity struct{}

func (stubIdentity) GetStaff(_ context.Context, id int64) (*domain.StaffMember, error) {
	switch id {
	case managerID:
		return &domain.StaffMember{ID: managerID, DisplayName: "Stanley", Role: domain.RoleManager}, nil
	case staffID:
		return &domain.StaffMember{ID: staffID, DisplayName: "Marc", Role: domain.RoleStaff}, nil
	default:
		return nil, identityClient.ErrStaffNotFound
	}
}

type stubAvailability struct {
	free bool
}

func (s *stubAvailability) IsSlotFreeForEdit(context.Context, int64, string, string, int, int64) (bool, error) {
	return s.free, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func fixture(t *testing.T) *domain.Reservation {
	return &domain.Reservation{
		ID:              10,
		PrestationID:    1,
		StaffID:         7,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusPending,
		ClientName:      "Paul",
		ClientEmail:     "paul@example.com",
	}
}

func TestGetByID(t *testing.T) {
	repo := newStubReservationRepo(fixture(t))
	svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

	t.Run("staff can read", func(t *testing.T) {
		res, err := svc.GetByID(context.Background(), 10, staffID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ID)
		assert.Equal(t, "10:00", res.StartTime)
	})

	t.Run("unknown user denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, staffID)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("manager cancels pending reservation", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		err := svc.Cancel(context.Background(), 10, managerID)
		require.NoError(t, err)
		assert.Equal(t, []int64{10}, repo.cancelled)
	})

	t.Run("staff cannot cancel", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		err := svc.Cancel(context.Background(), 10, staffID)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		res := fixture(t)
		res.Status = domain.StatusCancelled
		repo := newStubReservationRepo(res)
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		err := svc.Cancel(context.Background(), 10, managerID)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestListByDay(t *testing.T) {
	repo := newStubReservationRepo(fixture(t))
	svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

	t.Run("returns reservations for the date", func(t *testing.T) {
		result, err := svc.ListByDay(context.Background(), &models.ListByDayRequest{
			UserID: staffID,
			Date:   "2025-06-02",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		_, err := svc.ListByDay(context.Background(), &models.ListByDayRequest{
			UserID: staffID,
			Date:   "02/06/2025",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := svc.ListByDay(context.Background(), &models.ListByDayRequest{
			UserID: staffID,
			Date:   "2025-06-02",
			Status: ptr.Ptr("archived"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("manager moves reservation when slot is free", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		result, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID:    managerID,
			StartTime: ptr.Ptr("14:00"),
			StaffID:   ptr.Ptr(int64(9)),
		})
		require.NoError(t, err)
		assert.Equal(t, "14:00", result.StartTime)
		assert.Equal(t, int64(9), result.StaffID)

		update := repo.updates[10]
		require.NotNil(t, update.StartTime)
		assert.Nil(t, update.Date)
		assert.Nil(t, update.DurationMinutes)
	})

	t.Run("conflicting target slot rejected", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: false}, noopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID:    managerID,
			StartTime: ptr.Ptr("10:30"),
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Empty(t, repo.updates)
	})

	t.Run("staff cannot move reservation", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID:    staffID,
			StartTime: ptr.Ptr("14:00"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid partial fields rejected", func(t *testing.T) {
		repo := newStubReservationRepo(fixture(t))
		svc := NewService(repo, stubIdentity{}, &stubAvailability{free: true}, noopLogger{})

		cases := []struct {
			name string
			req  *models.UpdateScheduleRequest
		}{
			{"bad time", &models.UpdateScheduleRequest{UserID: managerID, StartTime: ptr.Ptr("14h00")}},
			{"bad date", &models.UpdateScheduleRequest{UserID: managerID, Date: ptr.Ptr("14-06-2025")}},
			{"zero duration", &models.UpdateScheduleRequest{UserID: managerID, DurationMinutes: ptr.Ptr(0)}},
			{"negative staff", &models.UpdateScheduleRequest{UserID: managerID, StaffID: ptr.Ptr(int64(-1))}},
			{"bad status", &models.UpdateScheduleRequest{UserID: managerID, Status: ptr.Ptr("archived")}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.UpdateSchedule(context.Background(), 10, tc.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
