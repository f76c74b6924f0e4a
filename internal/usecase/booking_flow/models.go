package booking_flow

import (
	availableSlotsUC "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
)

// Step шаг мастера бронирования
type Step int

const (
	// StepSelectService выбор услуги из каталога
	StepSelectService Step = 1
	// StepSelectStaffAndSlot выбор мастера и слота
	StepSelectStaffAndSlot Step = 2
	// StepConfirm рекап выбранного перед отправкой формы
	StepConfirm Step = 3
)

// Request модель запроса шага мастера бронирования.
// Каждый шаг требует параметры предыдущих: при нехватке параметров
// мастер откатывается на первый шаг, к которому данных достаточно.
type Request struct {
	Step         Step   `json:"step"`
	PrestationID int64  `json:"prestationId,omitempty"`
	StaffID      int64  `json:"staffId,omitempty"` // 0 = без предпочтения
	Date         string `json:"date,omitempty"`    // "2025-06-02"
	Time         string `json:"time,omitempty"`    // "10:00"
}

// Response модель ответа с данными текущего шага.
// Заполнен ровно один payload, соответствующий Step.
type Response struct {
	Step          Step                  `json:"step"`
	Notice        string                `json:"notice,omitempty"` // Причина отката на предыдущий шаг
	SelectService *SelectServicePayload `json:"selectService,omitempty"`
	SelectSlot    *SelectSlotPayload    `json:"selectSlot,omitempty"`
	Confirm       *ConfirmPayload       `json:"confirm,omitempty"`
}

// PrestationSummary краткая карточка услуги
type PrestationSummary struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	PriceLabel      string `json:"priceLabel"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Category группа услуг одной категории
type Category struct {
	Name        string              `json:"name"`
	Prestations []PrestationSummary `json:"prestations"`
}

// SelectServicePayload каталог услуг для первого шага
type SelectServicePayload struct {
	Categories []Category `json:"categories"`
}

// StaffOption мастер, доступный для выбора
type StaffOption struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// SelectSlotPayload мастера и сетка слотов для второго шага
type SelectSlotPayload struct {
	Prestation PrestationSummary          `json:"prestation"`
	Staff      []StaffOption              `json:"staff"`
	Schedule   *availableSlotsUC.Response `json:"schedule"`
}

// ConfirmPayload рекап выбранного для третьего шага
type ConfirmPayload struct {
	Prestation PrestationSummary `json:"prestation"`
	StaffID    int64             `json:"staffId"` // 0 = без предпочтения
	Date       string            `json:"date"`
	Time       string            `json:"time"`
}
