package list_prestations

import (
	"net/http"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
)

const msgInvalidGroupBy = "некорректное значение groupBy, поддерживается только category"

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

// Handle GET /api/v1/prestations
// Query params: groupBy (optional, "category")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupBy := r.URL.Query().Get("groupBy")

	switch groupBy {
	case "":
		result, err := h.service.List(r.Context())
		if err != nil {
			h.logger.Error("GET /prestations - Failed to list prestations: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /prestations - Prestations retrieved successfully: count=%d", result.Total)
		handlers.RespondJSON(w, http.StatusOK, result)

	case "category":
		result, err := h.service.ListGrouped(r.Context())
		if err != nil {
			h.logger.Error("GET /prestations - Failed to list grouped prestations: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /prestations - Grouped prestations retrieved successfully: categories=%d", len(result))
		handlers.RespondJSON(w, http.StatusOK, result)

	default:
		h.logger.Warn("GET /prestations - Invalid groupBy: %s", groupBy)
		handlers.RespondBadRequest(w, msgInvalidGroupBy)
	}
}
