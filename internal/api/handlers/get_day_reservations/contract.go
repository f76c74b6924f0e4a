package get_day_reservations

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/reservations/models"
)

type ReservationService interface {
	ListByDay(ctx context.Context, req *models.ListByDayRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
