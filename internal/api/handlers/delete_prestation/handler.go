package delete_prestation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/service/prestations"
)

const (
	msgInvalidPrestationID = "некорректный ID услуги"
	msgMissingUserID       = "отсутствует идентификатор пользователя"
	msgNotFound            = "услуга не найдена"
	msgForbidden           = "доступ запрещен"
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

// Handle DELETE /api/v1/prestations/{prestationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prestationIDStr := vars["prestationId"]

	prestationID, err := strconv.ParseInt(prestationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /prestations/{id} - Invalid prestation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrestationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /prestations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), prestationID, userID); err != nil {
		switch {
		case errors.Is(err, prestations.ErrPrestationNotFound):
			h.logger.Warn("DELETE /prestations/{id} - Prestation not found: prestation_id=%d", prestationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, prestations.ErrAccessDenied):
			h.logger.Warn("DELETE /prestations/{id} - Access denied: prestation_id=%d, user_id=%d",
				prestationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /prestations/{id} - Failed to delete prestation: prestation_id=%d, error=%v",
				prestationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /prestations/{id} - Prestation deleted successfully: prestation_id=%d, user_id=%d",
		prestationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
