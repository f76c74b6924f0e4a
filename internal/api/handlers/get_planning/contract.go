package get_planning

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/planning/models"
)

type PlanningService interface {
	Get(ctx context.Context) (*models.PlanningResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
