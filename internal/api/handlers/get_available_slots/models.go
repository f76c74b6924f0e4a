package get_available_slots

import (
	getAvailableSlots "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// DayResponse HTTP модель слотов одного дня
type DayResponse struct {
	Date  string         `json:"date"` // "2025-06-02"
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP модель расписания по дням
type AvailableSlotsResponse struct {
	PrestationID    int64         `json:"prestationId"`
	StaffID         int64         `json:"staffId"` // 0 = без предпочтения
	DurationMinutes int           `json:"durationMinutes"`
	Days            []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.String(),
				Available: slot.Available,
			})
		}
		days = append(days, DayResponse{Date: day.Date, Slots: slots})
	}

	return &AvailableSlotsResponse{
		PrestationID:    resp.PrestationID,
		StaffID:         resp.StaffID,
		DurationMinutes: resp.DurationMinutes,
		Days:            days,
	}
}
