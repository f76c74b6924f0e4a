package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

type stubPrestationRepo struct {
	prestation *domain.Prestation
}

func (s *stubPrestationRepo) GetByID(context.Context, int64) (*domain.Prestation, error) {
	return s.prestation, nil
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
	calls        int
}

func (s *stubReservationRepo) FindByDay(_ context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	s.calls++
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

type stubPlanning struct {
	cal domain.BusinessCalendar
}

func (s *stubPlanning) GetCalendar(context.Context) (domain.BusinessCalendar, error) {
	return s.cal, nil
}

type stubIdentity struct {
	staff []domain.StaffMember
}

func (s *stubIdentity) ListStaff(context.Context, []domain.Role) ([]domain.StaffMember, error) {
	return s.staff, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func calendarWith(raw domain.RawPlanning) domain.BusinessCalendar {
	cal, _ := domain.NormalizePlanning(raw)
	return cal
}

func newTestUseCase(
	prestation *domain.Prestation,
	reservations *stubReservationRepo,
	cal domain.BusinessCalendar,
	staff []domain.StaffMember,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		&stubPrestationRepo{prestation: prestation},
		reservations,
		&stubPlanning{cal: cal},
		&stubIdentity{staff: staff},
		time.UTC,
		noopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_PinnedStaffConflicts(t *testing.T) {
	// Понедельник 2025-06-02, мастер 7 занят 10:00-10:30
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:              1,
				StaffID:         7,
				Date:            monday,
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusPublished,
			},
		},
	}

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30},
		repo,
		calendarWith(domain.RawPlanning{DaysAhead: 1}),
		[]domain.StaffMember{
			{ID: 7, Role: domain.RoleStaff},
			{ID: 9, Role: domain.RoleStaff},
		},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1, StaffID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.StaffID)
	require.Len(t, resp.Days, 1)

	slotByTime := make(map[types.TimeString]bool)
	for _, slot := range resp.Days[0].Slots {
		slotByTime[slot.StartTime] = slot.Available
	}

	assert.False(t, slotByTime["10:00"])
	assert.True(t, slotByTime["10:30"])
	assert.True(t, slotByTime["11:00"])
}

func TestExecute_NoPreferenceIsOptimistic(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:              1,
				StaffID:         7,
				Date:            monday,
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusPublished,
			},
		},
	}

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30},
		repo,
		calendarWith(domain.RawPlanning{DaysAhead: 1}),
		[]domain.StaffMember{
			{ID: 7, Role: domain.RoleStaff},
			{ID: 9, Role: domain.RoleStaff},
		},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.NoPreferenceStaffID, resp.StaffID)
	// Без закрепленного мастера занятость не проверяется вовсе
	assert.Zero(t, repo.calls)

	require.Len(t, resp.Days, 1)
	for _, slot := range resp.Days[0].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_AutoPinsSingleEligibleStaff(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30, AllowedStaffIDs: []int64{9}},
		&stubReservationRepo{},
		calendarWith(domain.RawPlanning{DaysAhead: 1}),
		[]domain.StaffMember{
			{ID: 7, Role: domain.RoleStaff},
			{ID: 9, Role: domain.RoleStaff},
		},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.StaffID)
}

func TestExecute_IneligibleStaffRejected(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30, AllowedStaffIDs: []int64{9}},
		&stubReservationRepo{},
		calendarWith(domain.RawPlanning{DaysAhead: 1}),
		[]domain.StaffMember{
			{ID: 7, Role: domain.RoleStaff},
			{ID: 9, Role: domain.RoleStaff},
		},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{PrestationID: 1, StaffID: 7})
	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_LeadTimeFiltersTodaySlots(t *testing.T) {
	// Сейчас понедельник 09:00, упреждение 3 часа: слоты до 12:00 скрыты
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30},
		&stubReservationRepo{},
		calendarWith(domain.RawPlanning{DaysAhead: 2, MinLeadMinutes: 180}),
		[]domain.StaffMember{{ID: 7, Role: domain.RoleStaff}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1, StaffID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	today := resp.Days[0]
	require.NotEmpty(t, today.Slots)
	assert.Equal(t, types.TimeString("12:00"), today.Slots[0].StartTime)
	for _, slot := range today.Slots {
		assert.False(t, slot.StartTime.IsBefore("12:00"))
	}

	// Завтра упреждение прозрачно: день начинается с открытия
	tomorrow := resp.Days[1]
	require.NotEmpty(t, tomorrow.Slots)
	assert.Equal(t, types.TimeString(domain.DefaultOpenTime), tomorrow.Slots[0].StartTime)
}

func TestExecute_DayHoursNarrowGlobalGrid(t *testing.T) {
	// Понедельник работает 09:00-12:00, остальные дни 10:00-20:00.
	// Сетка понедельника не должна вылезать за его собственное закрытие.
	now := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	enabled := true

	cal := calendarWith(domain.RawPlanning{
		DaysAhead: 1,
		Days: map[int]domain.RawDayHours{
			domain.WeekdayMonday: {Enabled: &enabled, Open: "09:00", Close: "12:00"},
		},
	})

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30},
		&stubReservationRepo{},
		cal,
		[]domain.StaffMember{{ID: 7, Role: domain.RoleStaff}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1, StaffID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	slots := resp.Days[0].Slots
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	last := slots[len(slots)-1]
	assert.Equal(t, types.TimeString("11:30"), last.StartTime)
}

func TestExecute_ClosedDaysSkipped(t *testing.T) {
	// Горизонт 7 дней с понедельника: воскресенье закрыто по умолчанию
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&domain.Prestation{ID: 1, DurationMinutes: 30},
		&stubReservationRepo{},
		calendarWith(domain.RawPlanning{DaysAhead: 7}),
		[]domain.StaffMember{{ID: 7, Role: domain.RoleStaff}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{PrestationID: 1, StaffID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Days, 6)
	for _, day := range resp.Days {
		assert.NotEqual(t, "2025-06-08", day.Date)
	}
}
