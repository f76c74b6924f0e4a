package get_available_slots

import (
	"context"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// PrestationRepository интерфейс репозитория каталога услуг
type PrestationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	FindByDay(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error)
}

// PlanningProvider интерфейс получения нормализованного календаря салона
type PlanningProvider interface {
	GetCalendar(ctx context.Context) (domain.BusinessCalendar, error)
}

// IdentityClient интерфейс клиента каталога сотрудников
type IdentityClient interface {
	ListStaff(ctx context.Context, roles []domain.Role) ([]domain.StaffMember, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
