package booking_flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/internal/domain"
	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
	availableSlotsUC "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

type stubPrestationRepo struct {
	prestations []*domain.Prestation
}

func (s *stubPrestationRepo) GetByID(_ context.Context, id int64) (*domain.Prestation, error) {
	for _, p := range s.prestations {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, prestationRepo.ErrPrestationNotFound
}

func (s *stubPrestationRepo) List(context.Context) ([]*domain.Prestation, error) {
	return s.prestations, nil
}

type stubIdentity struct {
	staff []domain.StaffMember
}

func (s *stubIdentity) ListStaff(context.Context, []domain.Role) ([]domain.StaffMember, error) {
	return s.staff, nil
}

type stubSlots struct {
	response *availableSlotsUC.Response
	calls    int
}

func (s *stubSlots) Execute(_ context.Context, req *availableSlotsUC.Request) (*availableSlotsUC.Response, error) {
	s.calls++
	resp := *s.response
	resp.PrestationID = req.PrestationID
	return &resp, nil
}

type stubAvailability struct {
	available bool
}

func (s *stubAvailability) IsSlotAvailable(context.Context, string, string, int, int64) (bool, error) {
	return s.available, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func catalogue() []*domain.Prestation {
	return []*domain.Prestation{
		{ID: 1, Title: "Coupe homme", Category: "Coupes", PriceLabel: "20€", DurationMinutes: 30},
		{ID: 2, Title: "Coupe femme", Category: "Coupes", PriceLabel: "35€", DurationMinutes: 45},
		{ID: 3, Title: "Couleur", Category: "Couleurs", PriceLabel: "dès 50€", DurationMinutes: 60, AllowedStaffIDs: []int64{9}},
	}
}

func newTestUseCase(available bool) (*UseCase, *stubSlots) {
	slots := &stubSlots{
		response: &availableSlotsUC.Response{
			DurationMinutes: 30,
			Days:            []availableSlotsUC.Day{{Date: "2025-06-02"}},
		},
	}
	uc := NewUseCase(
		&stubPrestationRepo{prestations: catalogue()},
		&stubIdentity{staff: []domain.StaffMember{
			{ID: 7, DisplayName: "Marc", Role: domain.RoleStaff},
			{ID: 9, DisplayName: "Sophie", Role: domain.RoleStaff},
		}},
		slots,
		&stubAvailability{available: available},
		noopLogger{},
	)
	return uc, slots
}

func TestExecute_SelectServiceStep(t *testing.T) {
	uc, _ := newTestUseCase(true)

	resp, err := uc.Execute(context.Background(), &Request{Step: StepSelectService})
	require.NoError(t, err)
	assert.Equal(t, StepSelectService, resp.Step)
	require.NotNil(t, resp.SelectService)

	require.Len(t, resp.SelectService.Categories, 2)
	assert.Equal(t, "Coupes", resp.SelectService.Categories[0].Name)
	assert.Len(t, resp.SelectService.Categories[0].Prestations, 2)
	assert.Equal(t, "Couleurs", resp.SelectService.Categories[1].Name)
}

func TestExecute_SelectServiceStepFiltersByStaff(t *testing.T) {
	uc, _ := newTestUseCase(true)

	// Мастер 7 не делает услугу 3
	resp, err := uc.Execute(context.Background(), &Request{Step: StepSelectService, StaffID: 7})
	require.NoError(t, err)

	require.Len(t, resp.SelectService.Categories, 1)
	assert.Equal(t, "Coupes", resp.SelectService.Categories[0].Name)
}

func TestExecute_SelectSlotStep(t *testing.T) {
	uc, slots := newTestUseCase(true)

	resp, err := uc.Execute(context.Background(), &Request{Step: StepSelectStaffAndSlot, PrestationID: 3})
	require.NoError(t, err)
	assert.Equal(t, StepSelectStaffAndSlot, resp.Step)
	require.NotNil(t, resp.SelectSlot)

	// Couleur делает только Sophie
	require.Len(t, resp.SelectSlot.Staff, 1)
	assert.Equal(t, "Sophie", resp.SelectSlot.Staff[0].DisplayName)
	assert.Equal(t, 1, slots.calls)
	assert.Equal(t, int64(3), resp.SelectSlot.Schedule.PrestationID)
}

func TestExecute_ConfirmStep(t *testing.T) {
	uc, _ := newTestUseCase(true)

	resp, err := uc.Execute(context.Background(), &Request{
		Step:         StepConfirm,
		PrestationID: 1,
		StaffID:      7,
		Date:         "2025-06-02",
		Time:         "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, resp.Step)
	require.NotNil(t, resp.Confirm)
	assert.Equal(t, int64(7), resp.Confirm.StaffID)
	assert.Equal(t, "10:00", resp.Confirm.Time)
}

func TestExecute_ConfirmFallsBackWhenSlotTaken(t *testing.T) {
	uc, slots := newTestUseCase(false)

	resp, err := uc.Execute(context.Background(), &Request{
		Step:         StepConfirm,
		PrestationID: 1,
		StaffID:      7,
		Date:         "2025-06-02",
		Time:         "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, StepSelectStaffAndSlot, resp.Step)
	assert.NotEmpty(t, resp.Notice)
	require.NotNil(t, resp.SelectSlot)
	assert.Equal(t, 1, slots.calls)
}

func TestExecute_MissingParamsFallBack(t *testing.T) {
	uc, _ := newTestUseCase(true)

	t.Run("confirm without date drops to slot selection", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{Step: StepConfirm, PrestationID: 1})
		require.NoError(t, err)
		assert.Equal(t, StepSelectStaffAndSlot, resp.Step)
	})

	t.Run("slot selection without prestation drops to catalogue", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{Step: StepSelectStaffAndSlot})
		require.NoError(t, err)
		assert.Equal(t, StepSelectService, resp.Step)
	})

	t.Run("unknown step drops to catalogue", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{Step: 42})
		require.NoError(t, err)
		assert.Equal(t, StepSelectService, resp.Step)
	})
}

func TestExecute_UnknownPrestation(t *testing.T) {
	uc, _ := newTestUseCase(true)

	_, err := uc.Execute(context.Background(), &Request{Step: StepSelectStaffAndSlot, PrestationID: 99})
	assert.ErrorIs(t, err, ErrPrestationNotFound)
}
