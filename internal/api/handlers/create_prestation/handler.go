package create_prestation

import (
	"errors"
	"net/http"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/service/prestations"
	"github.com/zohoustanley/barbeshop/internal/service/prestations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные услуги"
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

// Handle POST /api/v1/prestations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /prestations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpsertPrestationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prestations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Идентификатор пользователя берется только из заголовка
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prestations.ErrAccessDenied):
			h.logger.Warn("POST /prestations - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, prestations.ErrInvalidInput):
			h.logger.Warn("POST /prestations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /prestations - Failed to create prestation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prestations - Prestation created successfully: prestation_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
