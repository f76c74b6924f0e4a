package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

// UseCase use case создания записи клиентом
type UseCase struct {
	prestationRepo  PrestationRepository
	reservationRepo ReservationRepository
	planning        PlanningProvider
	identity        IdentityClient
	mailer          MailerClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	notifications   NotificationConfig
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prestationRepo PrestationRepository,
	reservationRepo ReservationRepository,
	planning PlanningProvider,
	identity IdentityClient,
	mailerClient MailerClient,
	txManager TransactionManager,
	location *time.Location,
	notifications NotificationConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		prestationRepo:  prestationRepo,
		reservationRepo: reservationRepo,
		planning:        planning,
		identity:        identity,
		mailer:          mailerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		notifications:   notifications,
		logger:          logger,
	}
}

// Execute создает запись клиента.
// Проверка занятости и вставка идут в одной сериализуемой транзакции
// с блокировкой записей дня (FOR UPDATE): два клиента, одновременно
// бронирующие один слот у одного мастера, не пройдут оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: prestation=%d, staff=%d, date=%s, time=%s",
		req.PrestationID, req.StaffID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	date, _ := time.Parse(domain.DateFormat, req.Date)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.location)
	startTime, _ := types.NewTimeStringFromString(req.StartTime)

	// 2. Текущее время в таймзоне салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем услугу
	prestation, err := uc.prestationRepo.GetByID(ctx, req.PrestationID)
	if err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			uc.logger.Warn("CreateReservation: prestation id=%d not found", req.PrestationID)
			return nil, ErrPrestationNotFound
		}
		uc.logger.Error("CreateReservation: failed to get prestation id=%d: %v", req.PrestationID, err)
		return nil, fmt.Errorf("%w: failed to get prestation: %v", ErrInternal, err)
	}

	// 4. Определяем мастера
	staffID, err := uc.resolveStaff(ctx, prestation, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 5. Получаем календарь и проверяем расписание
	cal, err := uc.planning.GetCalendar(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get planning: %v", err)
		return nil, fmt.Errorf("%w: failed to get planning: %v", ErrInternal, err)
	}

	if err := validateSchedule(cal, date, startTime, now); err != nil {
		uc.logger.Warn("CreateReservation: schedule validation failed: %v", err)
		return nil, err
	}

	duration := prestation.EffectiveDuration()

	var result *domain.Reservation

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if staffID != domain.NoPreferenceStaffID {
			reservations, err := uc.reservationRepo.FindByDay(txCtx, domain.DayReservationsFilter{
				Date:    date,
				StaffID: &staffID,
			})
			if err != nil {
				uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
				return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
			}

			conflict, err := domain.ConflictsWith(startTime, duration, reservations)
			if err != nil {
				uc.logger.Warn("CreateReservation: %s %s +%dmin does not fit the day: %v",
					req.Date, req.StartTime, duration, err)
				return ErrSlotNotAvailable
			}
			if conflict {
				uc.logger.Warn("CreateReservation: slot %s %s staff=%d already taken",
					req.Date, req.StartTime, staffID)
				return ErrSlotNotAvailable
			}
		}

		reservation := &domain.Reservation{
			PrestationID:    req.PrestationID,
			StaffID:         staffID,
			Date:            date,
			StartTime:       startTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			ClientNote:      req.ClientNote,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 7. Уведомления после коммита. Почта не критична для брони:
	// ошибка отправки логируется, клиент получает успешный ответ.
	uc.notify(ctx, result, prestation)

	return &Response{
		ID:              result.ID,
		PrestationID:    result.PrestationID,
		StaffID:         result.StaffID,
		Date:            result.Date.Format(domain.DateFormat),
		StartTime:       result.StartTime.String(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		ClientEmail:     result.ClientEmail,
		ClientPhone:     result.ClientPhone,
		ClientNote:      result.ClientNote,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveStaff применяет правила выбора мастера для услуги
func (uc *UseCase) resolveStaff(ctx context.Context, prestation *domain.Prestation, requested int64) (int64, error) {
	staff, err := uc.identity.ListStaff(ctx, nil)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list staff: %v", err)
		return 0, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	eligible := prestation.EligibleStaff(staff)

	if requested != domain.NoPreferenceStaffID {
		for _, member := range eligible {
			if member.ID == requested {
				return requested, nil
			}
		}
		uc.logger.Warn("CreateReservation: staff id=%d is not eligible for prestation id=%d",
			requested, prestation.ID)
		return 0, ErrStaffNotEligible
	}

	// Единственный кандидат закрепляется автоматически.
	// Запись с staffID=0 распределит салон вручную.
	if len(eligible) == 1 {
		uc.logger.Info("CreateReservation: auto-pinned staff id=%d for prestation id=%d",
			eligible[0].ID, prestation.ID)
		return eligible[0].ID, nil
	}

	return domain.NoPreferenceStaffID, nil
}
