package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	reservationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/reservation"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	"github.com/zohoustanley/barbeshop/internal/service/reservations/models"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

// Service сервис для работы с записями клиентов со стороны админки.
// Публичное создание записи живет в usecase create_reservation.
type Service struct {
	reservationRepo ReservationRepository
	identity        IdentityClient
	availability    AvailabilityChecker
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservationRepo ReservationRepository,
	identity IdentityClient,
	availability AvailabilityChecker,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		identity:        identity,
		availability:    availability,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Доступно любому сотруднику (staff и manager).
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	if _, err := s.requireRole(ctx, userID, domain.Role.CanReadReservations); err != nil {
		return nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// ListByDay получает записи на конкретную дату.
// Доступно любому сотруднику (staff и manager).
func (s *Service) ListByDay(ctx context.Context, req *models.ListByDayRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDay: fetching reservations for date=%s user=%d", req.Date, req.UserID)

	if _, err := s.requireRole(ctx, req.UserID, domain.Role.CanReadReservations); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("ListByDay: invalid date=%s", req.Date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	filter := domain.DayReservationsFilter{
		Date:    date,
		StaffID: req.StaffID,
	}
	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("ListByDay: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	reservations, err := s.reservationRepo.FindByDay(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDay: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: ListByDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDay: fetched %d reservations for date=%s", len(reservations), req.Date)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет запись.
// Доступно только менеджеру.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, userID)

	if _, err := s.requireRole(ctx, userID, domain.Role.CanManageAllReservations); err != nil {
		return err
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status=%s cannot be cancelled", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}

// UpdateSchedule переносит запись на другое время, дату или мастера.
// Доступно только менеджеру. Перед сохранением проверяет, что новое
// расписание не пересекается с другой записью того же мастера.
func (s *Service) UpdateSchedule(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateSchedule: updating reservation id=%d by user=%d", id, req.UserID)

	if _, err := s.requireRole(ctx, req.UserID, domain.Role.CanManageAllReservations); err != nil {
		return nil, err
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	update, err := s.buildScheduleUpdate(req)
	if err != nil {
		return nil, err
	}

	// Итоговое расписание после применения частичного обновления
	targetDate := current.Date.Format(domain.DateFormat)
	if update.Date != nil {
		targetDate = update.Date.Format(domain.DateFormat)
	}
	targetTime := current.StartTime.String()
	if update.StartTime != nil {
		targetTime = update.StartTime.String()
	}
	targetDuration := current.DurationMinutes
	if update.DurationMinutes != nil {
		targetDuration = *update.DurationMinutes
	}
	targetStaff := current.StaffID
	if update.StaffID != nil {
		targetStaff = *update.StaffID
	}

	free, err := s.availability.IsSlotFreeForEdit(ctx, id, targetDate, targetTime, targetDuration, targetStaff)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - availability check: %v", ErrInternal, err)
	}
	if !free {
		s.logger.Warn("UpdateSchedule: reservation id=%d target slot %s %s staff=%d is taken", id, targetDate, targetTime, targetStaff)
		return nil, ErrSlotConflict
	}

	if err := s.reservationRepo.UpdateSchedule(ctx, id, update); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: reservation id=%d moved to %s %s staff=%d", id, targetDate, targetTime, targetStaff)
	return models.FromDomainReservation(updated), nil
}

// buildScheduleUpdate валидирует частичное обновление и конвертирует его в доменную модель
func (s *Service) buildScheduleUpdate(req *models.UpdateScheduleRequest) (domain.ScheduleUpdate, error) {
	var update domain.ScheduleUpdate

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return update, fmt.Errorf("%w: invalid date", ErrInvalidInput)
		}
		update.Date = &date
	}

	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return update, fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
		update.StartTime = &startTime
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return update, fmt.Errorf("%w: invalid duration", ErrInvalidInput)
		}
		update.DurationMinutes = req.DurationMinutes
	}

	if req.StaffID != nil {
		if *req.StaffID < 0 {
			return update, fmt.Errorf("%w: invalid staff id", ErrInvalidInput)
		}
		update.StaffID = req.StaffID
	}

	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			return update, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		update.Status = &status
	}

	return update, nil
}

// requireRole проверяет, что пользователь существует в каталоге сотрудников
// и его роль проходит переданную проверку прав
func (s *Service) requireRole(ctx context.Context, userID int64, allowed func(domain.Role) bool) (*domain.StaffMember, error) {
	member, err := s.identity.GetStaff(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrStaffNotFound) {
			s.logger.Warn("requireRole: user=%d not found in identity service", userID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("requireRole: identity service error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: identity service error: %v", ErrInternal, err)
	}

	if !allowed(member.Role) {
		s.logger.Warn("requireRole: user=%d role=%s denied", userID, member.Role)
		return nil, ErrAccessDenied
	}

	return member, nil
}
