package get_day_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/zohoustanley/barbeshop/internal/api/handlers"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/internal/service/reservations"
	"github.com/zohoustanley/barbeshop/internal/service/reservations/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidStatus  = "некорректный статус записи"
	msgMissingUserID  = "отсутствует идентификатор пользователя"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/planning/days/{date}/reservations
// Query params: staffId (optional), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		h.logger.Warn("GET /planning/days/{date}/reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /planning/days/{date}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListByDayRequest{
		UserID: userID,
		Date:   dateStr,
	}

	query := r.URL.Query()

	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID < 0 {
			h.logger.Warn("GET /planning/days/{date}/reservations - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if status := query.Get("status"); status != "" {
		if _, ok := models.ToDomainStatus(status); !ok {
			h.logger.Warn("GET /planning/days/{date}/reservations - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}

	result, err := h.service.ListByDay(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /planning/days/{date}/reservations - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /planning/days/{date}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /planning/days/{date}/reservations - Failed to list reservations: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /planning/days/{date}/reservations - Reservations retrieved successfully: date=%s, count=%d, user_id=%d",
		dateStr, result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
