package models

import (
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// Request модели

// ListByDayRequest запрос списка записей на дату
type ListByDayRequest struct {
	UserID  int64   `json:"userId"`
	Date    string  `json:"date"`              // "2025-06-02"
	StaffID *int64  `json:"staffId,omitempty"` // Фильтр по мастеру (опционально)
	Status  *string `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// UpdateScheduleRequest запрос переноса записи.
// Nil-поле означает "оставить без изменения".
type UpdateScheduleRequest struct {
	UserID          int64   `json:"userId"`
	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	StaffID         *int64  `json:"staffId,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID              int64   `json:"id"`
	PrestationID    int64   `json:"prestationId"`
	StaffID         int64   `json:"staffId"`
	Date            string  `json:"date"`      // "2025-06-02"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	ClientNote      *string `json:"clientNote,omitempty"`
	CancelledAt     *string `json:"cancelledAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную запись в response модель
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	response := &ReservationResponse{
		ID:              res.ID,
		PrestationID:    res.PrestationID,
		StaffID:         res.StaffID,
		Date:            res.Date.Format(domain.DateFormat),
		StartTime:       res.StartTime.String(),
		DurationMinutes: res.DurationMinutes,
		Status:          string(res.Status),
		ClientName:      res.ClientName,
		ClientEmail:     res.ClientEmail,
		ClientPhone:     res.ClientPhone,
		ClientNote:      res.ClientNote,
		CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       res.UpdatedAt.Format(time.RFC3339),
	}

	if res.CancelledAt != nil {
		cancelledAt := res.CancelledAt.Format(time.RFC3339)
		response.CancelledAt = &cancelledAt
	}

	return response
}

// FromDomainReservationList конвертирует список доменных записей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}

// ToDomainStatus конвертирует строковый статус в доменный
func ToDomainStatus(s string) (domain.ReservationStatus, bool) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusPublished, domain.StatusCancelled:
		return domain.ReservationStatus(s), true
	default:
		return "", false
	}
}
