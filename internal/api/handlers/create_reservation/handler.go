package create_reservation

import (
	"errors"
	"net/http"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	createReservation "github.com/zohoustanley/barbeshop/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные записи"
	msgPrestationNotFound = "услуга не найдена"
	msgStaffNotEligible   = "выбранный мастер не выполняет эту услугу"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgOutsideHours       = "время вне часов работы салона"
	msgInvalidDate        = "некорректная дата записи"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgTooSoon            = "слот нарушает минимальное время упреждения"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createReservation.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: prestation_id=%d, date=%s, time=%s",
				req.PrestationID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrPrestationNotFound):
			h.logger.Warn("POST /reservations - Prestation not found: prestation_id=%d", req.PrestationID)
			handlers.RespondNotFound(w, msgPrestationNotFound)

		case errors.Is(err, createReservation.ErrStaffNotEligible):
			h.logger.Warn("POST /reservations - Staff not eligible: prestation_id=%d, staff_id=%d",
				req.PrestationID, req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, createReservation.ErrSalonClosed):
			h.logger.Warn("POST /reservations - Salon closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createReservation.ErrOutsideOpeningHours):
			h.logger.Warn("POST /reservations - Outside opening hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrTooSoon):
			h.logger.Warn("POST /reservations - Lead time violated: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: prestation_id=%d, error=%v",
				req.PrestationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, prestation_id=%d, staff_id=%d",
		result.ID, result.PrestationID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
