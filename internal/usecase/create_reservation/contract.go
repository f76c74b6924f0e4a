package create_reservation

import (
	"context"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/internal/integrations/mailer"
)

// PrestationRepository интерфейс репозитория каталога услуг
type PrestationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
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

// MailerClient интерфейс клиента почтового сервиса
type MailerClient interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
