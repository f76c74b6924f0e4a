package list_prestations

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/prestations/models"
)

type PrestationService interface {
	List(ctx context.Context) (*models.PrestationListResponse, error)
	ListGrouped(ctx context.Context) ([]*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
