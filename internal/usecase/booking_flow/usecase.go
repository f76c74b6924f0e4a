package booking_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/zohoustanley/barbeshop/internal/domain"
	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
	availableSlotsUC "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

// msgSlotTaken причина отката с подтверждения на выбор слота
const msgSlotTaken = "Le créneau choisi n'est plus disponible, merci d'en choisir un autre."

// UseCase use case пошагового мастера бронирования
type UseCase struct {
	prestationRepo PrestationRepository
	identity       IdentityClient
	slots          SlotsProvider
	availability   AvailabilityChecker
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prestationRepo PrestationRepository,
	identity IdentityClient,
	slots SlotsProvider,
	availability AvailabilityChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		prestationRepo: prestationRepo,
		identity:       identity,
		slots:          slots,
		availability:   availability,
		logger:         logger,
	}
}

// Execute возвращает данные запрошенного шага мастера бронирования.
// Неизвестный шаг или нехватка параметров не являются ошибкой:
// мастер откатывается на последний шаг, к которому данных достаточно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	step := uc.effectiveStep(req)
	uc.logger.Info("BookingFlow: requested step=%d, effective step=%d, prestation=%d, staff=%d",
		req.Step, step, req.PrestationID, req.StaffID)

	switch step {
	case StepSelectStaffAndSlot:
		return uc.selectSlotStep(ctx, req)
	case StepConfirm:
		return uc.confirmStep(ctx, req)
	default:
		return uc.selectServiceStep(ctx, req)
	}
}

// effectiveStep понижает запрошенный шаг до достижимого с текущими параметрами
func (uc *UseCase) effectiveStep(req *Request) Step {
	step := req.Step
	if step < StepSelectService || step > StepConfirm {
		step = StepSelectService
	}

	if step >= StepConfirm && (req.Date == "" || req.Time == "") {
		step = StepSelectStaffAndSlot
	}
	if step >= StepSelectStaffAndSlot && req.PrestationID == 0 {
		step = StepSelectService
	}

	return step
}

// selectServiceStep первый шаг: каталог услуг по категориям.
// Если клиент уже выбрал мастера, каталог сужается до его услуг.
func (uc *UseCase) selectServiceStep(ctx context.Context, req *Request) (*Response, error) {
	prestations, err := uc.prestationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("BookingFlow: failed to list prestations: %v", err)
		return nil, fmt.Errorf("%w: failed to list prestations: %v", ErrInternal, err)
	}

	categories := make([]Category, 0)
	index := make(map[string]int)

	for _, p := range prestations {
		if req.StaffID != domain.NoPreferenceStaffID && !p.AllowsStaff(req.StaffID) {
			continue
		}

		pos, ok := index[p.Category]
		if !ok {
			pos = len(categories)
			index[p.Category] = pos
			categories = append(categories, Category{Name: p.Category})
		}
		categories[pos].Prestations = append(categories[pos].Prestations, summarize(p))
	}

	return &Response{
		Step:          StepSelectService,
		SelectService: &SelectServicePayload{Categories: categories},
	}, nil
}

// selectSlotStep второй шаг: подходящие мастера и сетка слотов
func (uc *UseCase) selectSlotStep(ctx context.Context, req *Request) (*Response, error) {
	prestation, err := uc.getPrestation(ctx, req.PrestationID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.identity.ListStaff(ctx, nil)
	if err != nil {
		uc.logger.Error("BookingFlow: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	options := make([]StaffOption, 0)
	for _, member := range prestation.EligibleStaff(staff) {
		options = append(options, StaffOption{ID: member.ID, DisplayName: member.DisplayName})
	}

	schedule, err := uc.slots.Execute(ctx, &availableSlotsUC.Request{
		PrestationID: req.PrestationID,
		StaffID:      req.StaffID,
	})
	if err != nil {
		if errors.Is(err, availableSlotsUC.ErrStaffNotEligible) {
			return nil, ErrStaffNotEligible
		}
		if errors.Is(err, availableSlotsUC.ErrPrestationNotFound) {
			return nil, ErrPrestationNotFound
		}
		uc.logger.Error("BookingFlow: failed to compute schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to compute schedule: %v", ErrInternal, err)
	}

	return &Response{
		Step: StepSelectStaffAndSlot,
		SelectSlot: &SelectSlotPayload{
			Prestation: summarize(prestation),
			Staff:      options,
			Schedule:   schedule,
		},
	}, nil
}

// confirmStep третий шаг: рекап с повторной проверкой занятости.
// Слот мог уйти, пока клиент заполнял форму: в этом случае мастер
// возвращается на выбор слота со свежей сеткой.
func (uc *UseCase) confirmStep(ctx context.Context, req *Request) (*Response, error) {
	prestation, err := uc.getPrestation(ctx, req.PrestationID)
	if err != nil {
		return nil, err
	}

	staffID, err := uc.resolveStaff(ctx, prestation, req.StaffID)
	if err != nil {
		return nil, err
	}

	available, err := uc.availability.IsSlotAvailable(ctx, req.Date, req.Time, prestation.EffectiveDuration(), staffID)
	if err != nil {
		uc.logger.Error("BookingFlow: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	if !available {
		uc.logger.Info("BookingFlow: slot %s %s staff=%d is gone, falling back to slot selection",
			req.Date, req.Time, staffID)
		resp, err := uc.selectSlotStep(ctx, req)
		if err != nil {
			return nil, err
		}
		resp.Notice = msgSlotTaken
		return resp, nil
	}

	return &Response{
		Step: StepConfirm,
		Confirm: &ConfirmPayload{
			Prestation: summarize(prestation),
			StaffID:    staffID,
			Date:       req.Date,
			Time:       req.Time,
		},
	}, nil
}

func (uc *UseCase) getPrestation(ctx context.Context, id int64) (*domain.Prestation, error) {
	prestation, err := uc.prestationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			uc.logger.Warn("BookingFlow: prestation id=%d not found", id)
			return nil, ErrPrestationNotFound
		}
		uc.logger.Error("BookingFlow: failed to get prestation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get prestation: %v", ErrInternal, err)
	}
	return prestation, nil
}

// resolveStaff применяет те же правила выбора мастера, что и расчет слотов
func (uc *UseCase) resolveStaff(ctx context.Context, prestation *domain.Prestation, requested int64) (int64, error) {
	staff, err := uc.identity.ListStaff(ctx, nil)
	if err != nil {
		uc.logger.Error("BookingFlow: failed to list staff: %v", err)
		return 0, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	eligible := prestation.EligibleStaff(staff)

	if requested != domain.NoPreferenceStaffID {
		for _, member := range eligible {
			if member.ID == requested {
				return requested, nil
			}
		}
		return 0, ErrStaffNotEligible
	}

	if len(eligible) == 1 {
		return eligible[0].ID, nil
	}

	return domain.NoPreferenceStaffID, nil
}

func summarize(p *domain.Prestation) PrestationSummary {
	return PrestationSummary{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		PriceLabel:      p.PriceLabel,
		DurationMinutes: p.EffectiveDuration(),
	}
}
