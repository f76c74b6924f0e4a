package get_planning

import (
	"net/http"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
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

// Handle GET /api/v1/planning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /planning - Failed to get planning: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /planning - Planning retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
