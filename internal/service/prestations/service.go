package prestations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	"github.com/zohoustanley/barbeshop/internal/service/prestations/models"
)

// Service сервис каталога услуг
type Service struct {
	prestationRepo PrestationRepository
	identity       IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	prestationRepo PrestationRepository,
	identity IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		prestationRepo: prestationRepo,
		identity:       identity,
		logger:         logger,
	}
}

// List возвращает весь каталог услуг. Публичная операция.
func (s *Service) List(ctx context.Context) (*models.PrestationListResponse, error) {
	prestations, err := s.prestationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPrestationList(prestations), nil
}

// ListGrouped возвращает каталог услуг, сгруппированный по категориям.
// Публичная операция.
func (s *Service) ListGrouped(ctx context.Context) ([]*models.CategoryResponse, error) {
	prestations, err := s.prestationRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListGrouped: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGrouped - repository error: %v", ErrInternal, err)
	}

	return models.GroupByCategory(prestations), nil
}

// GetByID возвращает услугу по ID. Публичная операция.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PrestationResponse, error) {
	p, err := s.prestationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			return nil, ErrPrestationNotFound
		}
		s.logger.Error("GetByID: repository error for prestation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPrestation(p), nil
}

// Create добавляет услугу в каталог.
// Доступно только менеджеру.
func (s *Service) Create(ctx context.Context, req *models.UpsertPrestationRequest) (*models.PrestationResponse, error) {
	s.logger.Info("Create: creating prestation %q by user=%d", req.Title, req.UserID)

	if err := s.requireManager(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := s.validateUpsert(ctx, req); err != nil {
		return nil, err
	}

	created, err := s.prestationRepo.Create(ctx, req.ToDomainPrestation(0))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: prestation id=%d created", created.ID)
	return models.FromDomainPrestation(created), nil
}

// Update обновляет услугу.
// Доступно только менеджеру. Существующие записи хранят снапшот
// длительности, поэтому изменение услуги их не затрагивает.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpsertPrestationRequest) (*models.PrestationResponse, error) {
	s.logger.Info("Update: updating prestation id=%d by user=%d", id, req.UserID)

	if err := s.requireManager(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := s.validateUpsert(ctx, req); err != nil {
		return nil, err
	}

	if err := s.prestationRepo.Update(ctx, req.ToDomainPrestation(id)); err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			return nil, ErrPrestationNotFound
		}
		s.logger.Error("Update: repository error for prestation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет услугу из каталога.
// Доступно только менеджеру.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting prestation id=%d by user=%d", id, userID)

	if err := s.requireManager(ctx, userID); err != nil {
		return err
	}

	if err := s.prestationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, prestationRepo.ErrPrestationNotFound) {
			return ErrPrestationNotFound
		}
		s.logger.Error("Delete: repository error for prestation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: prestation id=%d deleted", id)
	return nil
}

// validateUpsert проверяет поля запроса и существование указанных мастеров
func (s *Service) validateUpsert(ctx context.Context, req *models.UpsertPrestationRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if len(req.AllowedStaffIDs) > 0 {
		staff, err := s.identity.ListStaff(ctx, nil)
		if err != nil {
			s.logger.Error("validateUpsert: identity service error: %v", err)
			return fmt.Errorf("%w: identity service error: %v", ErrInternal, err)
		}

		known := make(map[int64]struct{}, len(staff))
		for _, member := range staff {
			known[member.ID] = struct{}{}
		}
		for _, id := range req.AllowedStaffIDs {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: unknown staff id %d", ErrInvalidInput, id)
			}
		}
	}

	return nil
}

// requireManager проверяет, что пользователь менеджер
func (s *Service) requireManager(ctx context.Context, userID int64) error {
	member, err := s.identity.GetStaff(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrStaffNotFound) {
			s.logger.Warn("requireManager: user=%d not found in identity service", userID)
			return ErrAccessDenied
		}
		s.logger.Error("requireManager: identity service error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: identity service error: %v", ErrInternal, err)
	}

	if !member.Role.CanManagePrestations() {
		s.logger.Warn("requireManager: user=%d role=%s denied", userID, member.Role)
		return ErrAccessDenied
	}

	return nil
}
