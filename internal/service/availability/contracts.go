package availability

import (
	"context"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	FindByDay(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
