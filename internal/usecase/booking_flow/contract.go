package booking_flow

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/domain"
	availableSlotsUC "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

// PrestationRepository интерфейс репозитория каталога услуг
type PrestationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
	List(ctx context.Context) ([]*domain.Prestation, error)
}

// IdentityClient интерфейс клиента каталога сотрудников
type IdentityClient interface {
	ListStaff(ctx context.Context, roles []domain.Role) ([]domain.StaffMember, error)
}

// SlotsProvider интерфейс расчета расписания доступных слотов
type SlotsProvider interface {
	Execute(ctx context.Context, req *availableSlotsUC.Request) (*availableSlotsUC.Response, error)
}

// AvailabilityChecker интерфейс финальной проверки слота перед подтверждением
type AvailabilityChecker interface {
	IsSlotAvailable(ctx context.Context, dateStr, timeStr string, durationMinutes int, staffID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
