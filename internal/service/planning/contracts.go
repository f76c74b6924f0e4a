package planning

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// PlanningRepository интерфейс репозитория настроек расписания
type PlanningRepository interface {
	GetRaw(ctx context.Context) (domain.RawPlanning, error)
	SaveRaw(ctx context.Context, raw domain.RawPlanning) error
}

// IdentityClient интерфейс клиента каталога сотрудников
type IdentityClient interface {
	GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
