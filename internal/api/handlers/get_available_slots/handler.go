package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	getAvailableSlots "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

const (
	msgInvalidPrestationID = "некорректный ID услуги"
	msgInvalidStaffID      = "некорректный ID мастера"
	msgPrestationNotFound  = "услуга не найдена"
	msgStaffNotEligible    = "выбранный мастер не выполняет эту услугу"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/prestations/{prestationId}/available-slots
// Query params: staffId (optional, 0 = без предпочтения)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prestationIDStr := vars["prestationId"]
	prestationID, err := strconv.ParseInt(prestationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /prestations/{id}/available-slots - Invalid prestation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrestationID)
		return
	}

	// staffId опционален: отсутствие означает "без предпочтения"
	var staffID int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" {
		staffID, err = strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID < 0 {
			h.logger.Warn("GET /prestations/{id}/available-slots - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PrestationID: prestationID,
		StaffID:      staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPrestationNotFound):
			h.logger.Warn("GET /prestations/{id}/available-slots - Prestation not found: prestation_id=%d", prestationID)
			handlers.RespondNotFound(w, msgPrestationNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotEligible):
			h.logger.Warn("GET /prestations/{id}/available-slots - Staff not eligible: prestation_id=%d, staff_id=%d",
				prestationID, staffID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /prestations/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPrestationID)

		default:
			h.logger.Error("GET /prestations/{id}/available-slots - Failed to get slots: prestation_id=%d, staff_id=%d, error=%v",
				prestationID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /prestations/{id}/available-slots - Slots retrieved successfully: prestation_id=%d, staff_id=%d, days_count=%d",
		prestationID, result.StaffID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
