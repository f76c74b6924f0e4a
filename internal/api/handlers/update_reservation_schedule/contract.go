package update_reservation_schedule

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/service/reservations/models"
)

type ReservationService interface {
	UpdateSchedule(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
