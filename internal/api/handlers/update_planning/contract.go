package update_planning

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/planning/models"
)

type PlanningService interface {
	Update(ctx context.Context, req *models.UpdatePlanningRequest) (*models.PlanningResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
