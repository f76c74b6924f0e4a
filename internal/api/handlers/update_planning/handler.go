package update_planning

import (
	"errors"
	"net/http"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/service/planning"
	"github.com/zohoustanley/barbeshop/internal/service/planning/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные настройки расписания"
)

type Handler struct {
	service PlanningService
	logger  Logger
}

func NewHandler(service PlanningService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/planning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /planning - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdatePlanningRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /planning - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Идентификатор пользователя берется только из заголовка
	req.UserID = userID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, planning.ErrAccessDenied):
			h.logger.Warn("PUT /planning - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, planning.ErrInvalidInput):
			h.logger.Warn("PUT /planning - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /planning - Failed to update planning: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /planning - Planning updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
