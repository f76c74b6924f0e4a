package prestations

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// PrestationRepository интерфейс репозитория каталога услуг
type PrestationRepository interface {
	Create(ctx context.Context, p *domain.Prestation) (*domain.Prestation, error)
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
	List(ctx context.Context) ([]*domain.Prestation, error)
	Update(ctx context.Context, p *domain.Prestation) error
	Delete(ctx context.Context, id int64) error
}

// IdentityClient интерфейс клиента каталога сотрудников
type IdentityClient interface {
	GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListStaff(ctx context.Context, roles []domain.Role) ([]domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
