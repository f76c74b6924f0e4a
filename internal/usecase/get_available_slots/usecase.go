package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
)

// UseCase use case расчета расписания доступных слотов
type UseCase struct {
	prestationRepo  PrestationRepository
	reservationRepo ReservationRepository
	planning        PlanningProvider
	identity        IdentityClient
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prestationRepo PrestationRepository,
	reservationRepo ReservationRepository,
	planning PlanningProvider,
	identity IdentityClient,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		prestationRepo:  prestationRepo,
		reservationRepo: reservationRepo,
		planning:        planning,
		identity:        identity,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute рассчитывает сетку слотов по дням горизонта бронирования.
//
// Выбор мастера:
//   - клиент указал мастера: мастер должен выполнять услугу, иначе ошибка;
//   - мастер не указан и услугу выполняет ровно один: закрепляем его,
//     слоты отражают его реальную занятость;
//   - мастер не указан и кандидатов несколько: слоты показываются
//     оптимистично, занятость проверит создание записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: prestation=%d, staff=%d", req.PrestationID, req.StaffID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в таймзоне салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем услугу
	prestation, err := uc.prestationRepo.GetByID(ctx, req.PrestationID)
	if err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			uc.logger.Warn("GetAvailableSlots: prestation id=%d not found", req.PrestationID)
			return nil, ErrPrestationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get prestation id=%d: %v", req.PrestationID, err)
		return nil, fmt.Errorf("%w: failed to get prestation: %v", ErrInternal, err)
	}

	// 4. Определяем мастера
	staffID, err := uc.resolveStaff(ctx, prestation, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 5. Получаем нормализованный календарь салона
	cal, err := uc.planning.GetCalendar(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get planning: %v", err)
		return nil, fmt.Errorf("%w: failed to get planning: %v", ErrInternal, err)
	}

	duration := prestation.EffectiveDuration()

	// 6. Общая сетка слотов на день
	master := buildMasterSlots(cal)

	// 7. Минимальное время начала с учетом упреждения
	minStart := now.Add(time.Duration(cal.MinLeadMinutes) * time.Minute)

	// 8. Обходим горизонт бронирования по дням
	days := make([]Day, 0, cal.DaysAhead)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)

	for offset := 0; offset < cal.DaysAhead; offset++ {
		date := today.AddDate(0, 0, offset)
		if !cal.IsOpenOn(date) {
			continue
		}

		daySlots := narrowToDay(master, cal.HoursFor(date), date, minStart, uc.location)

		var slots []Slot
		if staffID != domain.NoPreferenceStaffID {
			reservations, err := uc.reservationRepo.FindByDay(ctx, domain.DayReservationsFilter{
				Date:    date,
				StaffID: &staffID,
			})
			if err != nil {
				uc.logger.Error("GetAvailableSlots: failed to get reservations for %s: %v",
					date.Format(domain.DateFormat), err)
				return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
			}
			slots = markAvailability(daySlots, duration, reservations)
		} else {
			slots = markAllAvailable(daySlots)
		}

		days = append(days, Day{
			Date:  date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	uc.logger.Info("GetAvailableSlots: prestation=%d staff=%d produced %d days",
		req.PrestationID, staffID, len(days))

	return &Response{
		PrestationID:    req.PrestationID,
		StaffID:         staffID,
		DurationMinutes: duration,
		Days:            days,
	}, nil
}

// resolveStaff применяет правила выбора мастера для услуги
func (uc *UseCase) resolveStaff(ctx context.Context, prestation *domain.Prestation, requested int64) (int64, error) {
	staff, err := uc.identity.ListStaff(ctx, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff: %v", err)
		return 0, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	eligible := prestation.EligibleStaff(staff)

	if requested != domain.NoPreferenceStaffID {
		for _, member := range eligible {
			if member.ID == requested {
				return requested, nil
			}
		}
		uc.logger.Warn("GetAvailableSlots: staff id=%d is not eligible for prestation id=%d",
			requested, prestation.ID)
		return 0, ErrStaffNotEligible
	}

	// Единственный кандидат закрепляется автоматически
	if len(eligible) == 1 {
		uc.logger.Info("GetAvailableSlots: auto-pinned staff id=%d for prestation id=%d",
			eligible[0].ID, prestation.ID)
		return eligible[0].ID, nil
	}

	return domain.NoPreferenceStaffID, nil
}
