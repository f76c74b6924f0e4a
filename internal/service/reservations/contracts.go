package reservations

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindByDay(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error)
	UpdateSchedule(ctx context.Context, id int64, schedule domain.ScheduleUpdate) error
	Cancel(ctx context.Context, id int64) error
}

// IdentityClient интерфейс клиента каталога сотрудников
type IdentityClient interface {
	GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// AvailabilityChecker интерфейс проверки доступности слота при редактировании
type AvailabilityChecker interface {
	IsSlotFreeForEdit(ctx context.Context, excludeID int64, dateStr, timeStr string, durationMinutes int, staffID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
