package update_prestation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/service/prestations"
	"github.com/zohoustanley/barbeshop/internal/service/prestations/models"
)

const (
	msgInvalidPrestationID = "некорректный ID услуги"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует идентификатор пользователя"
	msgNotFound            = "услуга не найдена"
	msgForbidden           = "доступ запрещен"
	msgInvalidInput        = "некорректные данные услуги"
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

// Handle PUT /api/v1/prestations/{prestationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prestationIDStr := vars["prestationId"]

	prestationID, err := strconv.ParseInt(prestationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /prestations/{id} - Invalid prestation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrestationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /prestations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpsertPrestationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /prestations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Идентификатор пользователя берется только из заголовка
	req.UserID = userID

	result, err := h.service.Update(r.Context(), prestationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, prestations.ErrPrestationNotFound):
			h.logger.Warn("PUT /prestations/{id} - Prestation not found: prestation_id=%d", prestationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, prestations.ErrAccessDenied):
			h.logger.Warn("PUT /prestations/{id} - Access denied: prestation_id=%d, user_id=%d", prestationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, prestations.ErrInvalidInput):
			h.logger.Warn("PUT /prestations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /prestations/{id} - Failed to update prestation: prestation_id=%d, error=%v",
				prestationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /prestations/{id} - Prestation updated successfully: prestation_id=%d, user_id=%d",
		prestationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
