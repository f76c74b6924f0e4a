package get_available_slots

import (
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

// buildMasterSlots генерирует общую сетку слотов от самого раннего открытия
// до самого позднего закрытия среди всех рабочих дней. Слот входит в сетку,
// пока его начало строго раньше закрытия: получасовая стрижка, начатая за
// полчаса до закрытия, заканчивается ровно в закрытие.
func buildMasterSlots(cal domain.BusinessCalendar) []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := cal.GlobalOpen

	for current.IsBefore(cal.GlobalClose) {
		slots = append(slots, current)

		next, err := current.AddMinutes(cal.SlotIntervalMinutes)
		if err != nil {
			// Сетка уперлась в конец суток
			break
		}
		current = next
	}

	return slots
}

// narrowToDay оставляет из общей сетки слоты, попадающие в часы работы
// конкретного дня, и отбрасывает слоты раньше минимального времени
// упреждения. Сравнение упреждения идет по полным меткам времени в
// таймзоне салона: для завтрашних дней фильтр прозрачен, а большие
// значения lead могут закрывать и следующие дни целиком.
func narrowToDay(
	master []types.TimeString,
	hours domain.DayHours,
	date time.Time,
	minStart time.Time,
	loc *time.Location,
) []types.TimeString {
	slots := make([]types.TimeString, 0, len(master))

	for _, slot := range master {
		if slot.IsBefore(hours.Open) || !slot.IsBefore(hours.Close) {
			continue
		}

		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		slotAt := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
		if slotAt.Before(minStart) {
			continue
		}

		slots = append(slots, slot)
	}

	return slots
}

// markAvailability размечает слоты дня по занятости выбранного мастера
func markAvailability(
	slots []types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, start := range slots {
		conflict, err := domain.ConflictsWith(start, durationMinutes, reservations)
		if err != nil {
			// Услуга не помещается до конца суток: слот занят.
			result = append(result, Slot{StartTime: start, Available: false})
			continue
		}
		result = append(result, Slot{StartTime: start, Available: !conflict})
	}

	return result
}

// markAllAvailable размечает все слоты как доступные.
// Используется при записи без предпочтения мастера: пока хотя бы один
// из мастеров может быть свободен, витрина показывает слот открытым.
func markAllAvailable(slots []types.TimeString) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, start := range slots {
		result = append(result, Slot{StartTime: start, Available: true})
	}
	return result
}
