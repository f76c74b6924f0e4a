package planning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/internal/domain"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	"github.com/zohoustanley/barbeshop/internal/service/planning/models"
	"github.com/zohoustanley/barbeshop/pkg/ptr"
)

const (
	managerID = int64(1)
	staffID   = int64(2)
)

type stubPlanningRepo struct {
	raw   domain.RawPlanning
	saved *domain.RawPlanning
}

func (s *stubPlanningRepo) GetRaw(context.Context) (domain.RawPlanning, error) {
	return s.raw, nil
}

func (s *stubPlanningRepo) SaveRaw(_ context.Context, raw domain.RawPlanning) error {
	s.saved = &raw
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

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, _ ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestGet(t *testing.T) {
	t.Run("returns normalized defaults for empty settings", func(t *testing.T) {
		svc := NewService(&stubPlanningRepo{}, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultDaysAhead, resp.DaysAhead)
		assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.OpenDays)
		require.Len(t, resp.Days, 7)
		assert.Equal(t, domain.DefaultOpenTime, resp.Days[0].Open)
	})

	t.Run("logs anomalies without failing the request", func(t *testing.T) {
		repo := &stubPlanningRepo{raw: domain.RawPlanning{
			Days: map[int]domain.RawDayHours{
				domain.WeekdayMonday: {Enabled: ptr.Ptr(true), Open: "18:00", Close: "09:00"},
			},
		}}
		log := &recordingLogger{}
		svc := NewService(repo, stubIdentity{}, passthroughTxManager{}, log)

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, log.warnings)
		assert.Equal(t, domain.DefaultOpenTime, resp.Days[0].Open)
		assert.Equal(t, domain.DefaultCloseTime, resp.Days[0].Close)
	})
}

func TestUpdate(t *testing.T) {
	validRequest := func(userID int64) *models.UpdatePlanningRequest {
		return &models.UpdatePlanningRequest{
			UserID:              userID,
			DaysAhead:           14,
			SlotIntervalMinutes: 15,
			MinLeadMinutes:      60,
			Days: map[int]models.DayHoursRequest{
				domain.WeekdayMonday: {Enabled: ptr.Ptr(true), Open: "09:00", Close: "18:00"},
			},
		}
	}

	t.Run("manager saves raw settings as entered", func(t *testing.T) {
		repo := &stubPlanningRepo{}
		svc := NewService(repo, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		resp, err := svc.Update(context.Background(), validRequest(managerID))
		require.NoError(t, err)

		require.NotNil(t, repo.saved)
		assert.Equal(t, 14, repo.saved.DaysAhead)
		assert.Equal(t, 15, repo.saved.SlotIntervalMinutes)
		assert.Equal(t, "09:00", repo.saved.Days[domain.WeekdayMonday].Open)

		assert.Equal(t, 14, resp.DaysAhead)
		assert.Equal(t, 60, resp.MinLeadMinutes)
	})

	t.Run("staff denied", func(t *testing.T) {
		repo := &stubPlanningRepo{}
		svc := NewService(repo, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		_, err := svc.Update(context.Background(), validRequest(staffID))
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.saved)
	})

	t.Run("unknown user denied", func(t *testing.T) {
		svc := NewService(&stubPlanningRepo{}, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		_, err := svc.Update(context.Background(), validRequest(999))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid weekday rejected", func(t *testing.T) {
		repo := &stubPlanningRepo{}
		svc := NewService(repo, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		req := validRequest(managerID)
		req.Days[8] = models.DayHoursRequest{Open: "09:00", Close: "18:00"}

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, repo.saved)
	})

	t.Run("response is normalized even if input is not", func(t *testing.T) {
		svc := NewService(&stubPlanningRepo{}, stubIdentity{}, passthroughTxManager{}, &recordingLogger{})

		req := validRequest(managerID)
		req.SlotIntervalMinutes = 2

		resp, err := svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
	})
}
