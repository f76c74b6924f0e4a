package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

// Service сервис проверки доступности слотов.
//
// Две проверки намеренно ведут себя по-разному на неполных данных:
// публичная витрина при сомнении показывает слот занятым (клиент не должен
// забронировать занятое время), а проверка при редактировании в админке
// при сомнении не блокирует (менеджер правит заметку, а не расписание).
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// IsSlotAvailable проверяет, свободен ли слот для новой записи.
//
// Некорректная дата, время или длительность означают "занято":
// отвечать "свободно" на запрос, который мы не смогли понять, нельзя.
// Запись без мастера (staffID = 0) не резервирует ничье время,
// поэтому слот считается доступным оптимистично.
func (s *Service) IsSlotAvailable(ctx context.Context, dateStr, timeStr string, durationMinutes int, staffID int64) (bool, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("IsSlotAvailable: unparseable date %q, treating slot as unavailable", dateStr)
		return false, nil
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		s.logger.Warn("IsSlotAvailable: unparseable time %q, treating slot as unavailable", timeStr)
		return false, nil
	}

	if durationMinutes <= 0 {
		s.logger.Warn("IsSlotAvailable: non-positive duration %d, treating slot as unavailable", durationMinutes)
		return false, nil
	}

	if staffID == domain.NoPreferenceStaffID {
		return true, nil
	}

	reservations, err := s.reservationRepo.FindByDay(ctx, domain.DayReservationsFilter{
		Date:    date,
		StaffID: &staffID,
	})
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotAvailable - repository error: %v", ErrInternal, err)
	}

	conflict, err := domain.ConflictsWith(startTime, durationMinutes, reservations)
	if err != nil {
		// Кандидат вылезает за пределы суток: такой слот недоступен.
		s.logger.Warn("IsSlotAvailable: %s %s +%dmin does not fit the day: %v", dateStr, timeStr, durationMinutes, err)
		return false, nil
	}

	return !conflict, nil
}

// IsSlotFreeForEdit проверяет конфликт при редактировании существующей записи.
// Сама редактируемая запись (excludeID) из проверки исключается, иначе
// любое сохранение без переноса времени считало бы запись конфликтующей
// с самой собой.
//
// Отсутствующие поля расписания не блокируют сохранение. Присутствующие,
// но нечитаемые значения блокируют: менеджер явно ввел что-то не то.
func (s *Service) IsSlotFreeForEdit(ctx context.Context, excludeID int64, dateStr, timeStr string, durationMinutes int, staffID int64) (bool, error) {
	if staffID == domain.NoPreferenceStaffID || dateStr == "" || timeStr == "" || durationMinutes <= 0 {
		return true, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("IsSlotFreeForEdit: unparseable date %q for reservation id=%d", dateStr, excludeID)
		return false, nil
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		s.logger.Warn("IsSlotFreeForEdit: unparseable time %q for reservation id=%d", timeStr, excludeID)
		return false, nil
	}

	reservations, err := s.reservationRepo.FindByDay(ctx, domain.DayReservationsFilter{
		Date:      date,
		StaffID:   &staffID,
		ExcludeID: &excludeID,
	})
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotFreeForEdit - repository error: %v", ErrInternal, err)
	}

	conflict, err := domain.ConflictsWith(startTime, durationMinutes, reservations)
	if err != nil {
		s.logger.Warn("IsSlotFreeForEdit: %s %s +%dmin does not fit the day: %v", dateStr, timeStr, durationMinutes, err)
		return false, nil
	}

	return !conflict, nil
}
