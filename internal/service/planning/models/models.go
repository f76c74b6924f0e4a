package models

import (
	"github.com/zohoustanley/barbeshop/internal/domain"
)

// Request модели

// DayHoursRequest часы работы одного дня недели в запросе обновления
type DayHoursRequest struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

// UpdatePlanningRequest запрос обновления настроек расписания.
// Значения сохраняются как есть, нормализация выполняется на чтении.
type UpdatePlanningRequest struct {
	UserID              int64                   `json:"userId"`
	DaysAhead           int                     `json:"daysAhead"`
	SlotIntervalMinutes int                     `json:"slotIntervalMinutes"`
	MinLeadMinutes      int                     `json:"minLeadMinutes"`
	OpenDays            []int                   `json:"openDays,omitempty"`
	Days                map[int]DayHoursRequest `json:"days,omitempty"`
}

// ToDomainRaw конвертирует запрос в сырые настройки
func (r *UpdatePlanningRequest) ToDomainRaw() domain.RawPlanning {
	raw := domain.RawPlanning{
		DaysAhead:           r.DaysAhead,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		MinLeadMinutes:      r.MinLeadMinutes,
		OpenDays:            r.OpenDays,
		Days:                make(map[int]domain.RawDayHours, len(r.Days)),
	}
	for weekday, day := range r.Days {
		raw.Days[weekday] = domain.RawDayHours{
			Enabled: day.Enabled,
			Open:    day.Open,
			Close:   day.Close,
		}
	}
	return raw
}

// Response модели

// DayHoursResponse нормализованные часы работы одного дня недели
type DayHoursResponse struct {
	Weekday int    `json:"weekday"` // 1=понедельник .. 7=воскресенье
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`  // "10:00"
	Close   string `json:"close"` // "20:00"
}

// PlanningResponse нормализованные настройки расписания
type PlanningResponse struct {
	DaysAhead           int                `json:"daysAhead"`
	SlotIntervalMinutes int                `json:"slotIntervalMinutes"`
	MinLeadMinutes      int                `json:"minLeadMinutes"`
	OpenDays            []int              `json:"openDays"`
	GlobalOpen          string             `json:"globalOpen"`
	GlobalClose         string             `json:"globalClose"`
	Days                []DayHoursResponse `json:"days"`
}

// FromDomainCalendar конвертирует нормализованный календарь в response модель
func FromDomainCalendar(cal domain.BusinessCalendar) *PlanningResponse {
	days := make([]DayHoursResponse, 0, len(cal.Days))
	for weekday := domain.WeekdayMonday; weekday <= domain.WeekdaySunday; weekday++ {
		day := cal.Days[weekday]
		days = append(days, DayHoursResponse{
			Weekday: weekday,
			Enabled: day.Enabled,
			Open:    day.Open.String(),
			Close:   day.Close.String(),
		})
	}

	return &PlanningResponse{
		DaysAhead:           cal.DaysAhead,
		SlotIntervalMinutes: cal.SlotIntervalMinutes,
		MinLeadMinutes:      cal.MinLeadMinutes,
		OpenDays:            cal.OpenDays,
		GlobalOpen:          cal.GlobalOpen.String(),
		GlobalClose:         cal.GlobalClose.String(),
		Days:                days,
	}
}
