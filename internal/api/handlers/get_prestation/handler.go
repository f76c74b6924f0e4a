package get_prestation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/service/prestations"
)

const (
	msgInvalidPrestationID = "некорректный ID услуги"
	msgNotFound            = "услуга не найдена"
)

type Handler struct {
	service PrestationService
	logger  Logger
}

func NewHandler(service PrestationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/prestations/{prestationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prestationIDStr := vars["prestationId"]

	prestationID, err := strconv.ParseInt(prestationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /prestations/{id} - Invalid prestation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrestationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), prestationID)
	if err != nil {
		switch {
		case errors.Is(err, prestations.ErrPrestationNotFound):
			h.logger.Warn("GET /prestations/{id} - Prestation not found: prestation_id=%d", prestationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /prestations/{id} - Failed to get prestation: prestation_id=%d, error=%v",
				prestationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prestations/{id} - Prestation retrieved successfully: prestation_id=%d", prestationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
