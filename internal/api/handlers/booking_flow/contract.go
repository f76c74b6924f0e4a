package booking_flow

import (
	"context"

	bookingFlow "github.com/zohoustanley/barbeshop/internal/usecase/booking_flow"
)

type BookingFlowUseCase interface {
	Execute(ctx context.Context, req *bookingFlow.Request) (*bookingFlow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
