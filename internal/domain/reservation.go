package domain

import (
	"time"

	"github.com/zohoustanley/barbeshop/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusPublished ReservationStatus = "published"
	StatusCancelled ReservationStatus = "cancelled"
)

// NoPreferenceStaffID marks a reservation that is not pinned to any
// staff member. Such reservations never block a slot by themselves.
const NoPreferenceStaffID int64 = 0

// Reservation represents a booked appointment.
//
// DurationMinutes is a frozen snapshot of the prestation duration taken at
// booking time; later edits to the prestation never change the conflict
// window of an existing reservation.
type Reservation struct {
	ID              int64
	PrestationID    int64
	StaffID         int64 // 0 = no preference (unassigned)
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	ClientName  string
	ClientEmail string
	ClientPhone *string
	ClientNote  *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the reservation occupies its slot
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusPending || r.Status == StatusPublished
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusPublished
}

// HasAssignedStaff returns true if the reservation is pinned to a staff member
func (r *Reservation) HasAssignedStaff() bool {
	return r.StaffID > NoPreferenceStaffID
}

// ScheduleUpdate набор изменяемых полей расписания записи.
// Nil-поле означает "оставить как есть".
type ScheduleUpdate struct {
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	StaffID         *int64
	Status          *ReservationStatus
}

// DayReservationsFilter фильтр выборки броней на конкретную дату
type DayReservationsFilter struct {
	Date      time.Time           // Обязательный параметр
	StaffID   *int64              // Фильтр по мастеру (опционально)
	Statuses  []ReservationStatus // Если пусто - только блокирующие статусы
	ExcludeID *int64              // Исключить бронь (редактирование существующей записи)
}
