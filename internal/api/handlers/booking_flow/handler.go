package booking_flow

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	bookingFlow "github.com/zohoustanley/barbeshop/internal/usecase/booking_flow"
)

const (
	msgInvalidStep         = "некорректный номер шага"
	msgInvalidPrestationID = "некорректный ID услуги"
	msgInvalidStaffID      = "некорректный ID мастера"
	msgPrestationNotFound  = "услуга не найдена"
	msgStaffNotEligible    = "выбранный мастер не выполняет эту услугу"
)

type Handler struct {
	useCase BookingFlowUseCase
	logger  Logger
}

func NewHandler(useCase BookingFlowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-flow
// Query params: step, prestationId, staffId, date, time (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &bookingFlow.Request{
		Date: query.Get("date"),
		Time: query.Get("time"),
	}

	if stepStr := query.Get("step"); stepStr != "" {
		step, err := strconv.Atoi(stepStr)
		if err != nil {
			h.logger.Warn("GET /booking-flow - Invalid step: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStep)
			return
		}
		req.Step = bookingFlow.Step(step)
	}

	if prestationIDStr := query.Get("prestationId"); prestationIDStr != "" {
		prestationID, err := strconv.ParseInt(prestationIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /booking-flow - Invalid prestation ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPrestationID)
			return
		}
		req.PrestationID = prestationID
	}

	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID < 0 {
			h.logger.Warn("GET /booking-flow - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = staffID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrPrestationNotFound):
			h.logger.Warn("GET /booking-flow - Prestation not found: prestation_id=%d", req.PrestationID)
			handlers.RespondNotFound(w, msgPrestationNotFound)

		case errors.Is(err, bookingFlow.ErrStaffNotEligible):
			h.logger.Warn("GET /booking-flow - Staff not eligible: prestation_id=%d, staff_id=%d",
				req.PrestationID, req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		default:
			h.logger.Error("GET /booking-flow - Failed to build step: step=%d, error=%v", req.Step, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-flow - Step built successfully: requested_step=%d, effective_step=%d",
		req.Step, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
