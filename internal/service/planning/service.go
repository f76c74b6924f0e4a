package planning

import (
	"context"
	"errors"
	"fmt"

	"github.com/zohoustanley/barbeshop/internal/domain"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	"github.com/zohoustanley/barbeshop/internal/service/planning/models"
)

// Service сервис настроек расписания салона
type Service struct {
	planningRepo PlanningRepository
	identity     IdentityClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	planningRepo PlanningRepository,
	identity IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		planningRepo: planningRepo,
		identity:     identity,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает нормализованные настройки расписания.
// Аномалии в сохраненных данных не ломают ответ: каждая коэрция
// логируется как warning, а клиент получает безопасные значения.
func (s *Service) Get(ctx context.Context) (*models.PlanningResponse, error) {
	raw, err := s.planningRepo.GetRaw(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	cal := s.normalize(raw)
	return models.FromDomainCalendar(cal), nil
}

// GetCalendar возвращает нормализованный календарь как доменную модель.
// Используется usecase-слоем при расчете слотов и создании записи.
func (s *Service) GetCalendar(ctx context.Context) (domain.BusinessCalendar, error) {
	raw, err := s.planningRepo.GetRaw(ctx)
	if err != nil {
		s.logger.Error("GetCalendar: repository error: %v", err)
		return domain.BusinessCalendar{}, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	return s.normalize(raw), nil
}

// Update сохраняет настройки расписания.
// Доступно только менеджеру. Данные сохраняются без нормализации:
// что менеджер ввел, то и лежит в базе, а чтение само приведет их в порядок.
func (s *Service) Update(ctx context.Context, req *models.UpdatePlanningRequest) (*models.PlanningResponse, error) {
	s.logger.Info("Update: updating planning settings by user=%d", req.UserID)

	member, err := s.identity.GetStaff(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrStaffNotFound) {
			s.logger.Warn("Update: user=%d not found in identity service", req.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("Update: identity service error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: identity service error: %v", ErrInternal, err)
	}
	if !member.Role.CanManagePlanning() {
		s.logger.Warn("Update: user=%d role=%s denied", req.UserID, member.Role)
		return nil, ErrAccessDenied
	}

	for weekday := range req.Days {
		if weekday < domain.WeekdayMonday || weekday > domain.WeekdaySunday {
			return nil, fmt.Errorf("%w: invalid weekday %d", ErrInvalidInput, weekday)
		}
	}

	raw := req.ToDomainRaw()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.planningRepo.SaveRaw(ctx, raw)
	})
	if err != nil {
		s.logger.Error("Update: failed to save planning settings: %v", err)
		return nil, fmt.Errorf("%w: Update - save error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: planning settings saved by user=%d", req.UserID)
	return models.FromDomainCalendar(s.normalize(raw)), nil
}

func (s *Service) normalize(raw domain.RawPlanning) domain.BusinessCalendar {
	cal, anomalies := domain.NormalizePlanning(raw)
	for _, anomaly := range anomalies {
		s.logger.Warn("planning settings anomaly: %s", anomaly)
	}
	return cal
}
