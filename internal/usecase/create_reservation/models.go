package create_reservation

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	PrestationID int64   `json:"prestationId" validate:"required,gt=0"`
	StaffID      int64   `json:"staffId" validate:"gte=0"`
	Date         string  `json:"date" validate:"required"`      // "2025-06-02"
	StartTime    string  `json:"startTime" validate:"required"` // "10:00"
	ClientName   string  `json:"clientName" validate:"required,max=200"`
	ClientEmail  string  `json:"clientEmail" validate:"required,email"`
	ClientPhone  *string `json:"clientPhone,omitempty" validate:"omitempty,max=50"`
	ClientNote   *string `json:"clientNote,omitempty" validate:"omitempty,max=500"`
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     `json:"id"`
	PrestationID    int64     `json:"prestationId"`
	StaffID         int64     `json:"staffId"` // Итоговый мастер, 0 = будет назначен салоном
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	ClientPhone     *string   `json:"clientPhone,omitempty"`
	ClientNote      *string   `json:"clientNote,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
