package get_available_slots

import (
	"github.com/zohoustanley/barbeshop/pkg/types"
)

// Request модель запроса расписания доступных слотов
type Request struct {
	PrestationID int64 // ID услуги
	StaffID      int64 // ID мастера, 0 = без предпочтения
}

// Response модель ответа с расписанием по дням
type Response struct {
	PrestationID    int64 // ID услуги
	StaffID         int64 // Итоговый мастер: выбранный, автоматически закрепленный или 0
	DurationMinutes int   // Длительность услуги
	Days            []Day // Открытые дни горизонта бронирования
}

// Day слоты одного открытого дня
type Day struct {
	Date  string // "2025-06-02"
	Slots []Slot
}

// Slot один слот сетки расписания
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	Available bool             // Свободен ли слот для записи
}
