package booking_flow

import (
	slotsHTTP "github.com/zohoustanley/barbeshop/internal/api/handlers/get_available_slots"
	bookingFlow "github.com/zohoustanley/barbeshop/internal/usecase/booking_flow"
)

// SelectSlotResponse HTTP модель второго шага
type SelectSlotResponse struct {
	Prestation bookingFlow.PrestationSummary     `json:"prestation"`
	Staff      []bookingFlow.StaffOption         `json:"staff"`
	Schedule   *slotsHTTP.AvailableSlotsResponse `json:"schedule"`
}

// BookingFlowResponse HTTP модель шага мастера бронирования
type BookingFlowResponse struct {
	Step          int                               `json:"step"`
	Notice        string                            `json:"notice,omitempty"`
	SelectService *bookingFlow.SelectServicePayload `json:"selectService,omitempty"`
	SelectSlot    *SelectSlotResponse               `json:"selectSlot,omitempty"`
	Confirm       *bookingFlow.ConfirmPayload       `json:"confirm,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingFlow.Response) *BookingFlowResponse {
	out := &BookingFlowResponse{
		Step:          int(resp.Step),
		Notice:        resp.Notice,
		SelectService: resp.SelectService,
		Confirm:       resp.Confirm,
	}

	if resp.SelectSlot != nil {
		out.SelectSlot = &SelectSlotResponse{
			Prestation: resp.SelectSlot.Prestation,
			Staff:      resp.SelectSlot.Staff,
			Schedule:   slotsHTTP.FromUseCaseResponse(resp.SelectSlot.Schedule),
		}
	}

	return out
}
