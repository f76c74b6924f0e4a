package create_prestation

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/prestations/models"
)

type PrestationService interface {
	Create(ctx context.Context, req *models.UpsertPrestationRequest) (*models.PrestationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
