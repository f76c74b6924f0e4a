package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/zohoustanley/barbeshop/pkg/types"
)

// RawDayHours is the stored, unvalidated day schedule.
// Enabled may be absent for settings written before per-day flags existed;
// in that case membership in the legacy OpenDays list decides.
type RawDayHours struct {
	Enabled *bool
	Open    string
	Close   string
}

// RawPlanning is the planning settings blob exactly as persisted.
// Nothing in it can be trusted: normalization coerces every field.
type RawPlanning struct {
	DaysAhead           int
	SlotIntervalMinutes int
	MinLeadMinutes      int
	OpenDays            []int               // legacy open-days list, 1=Monday..7=Sunday
	Days                map[int]RawDayHours // keyed by ISO weekday
}

// DayHours is the normalized schedule of a single weekday
type DayHours struct {
	Enabled bool
	Open    types.TimeString
	Close   types.TimeString
}

// BusinessCalendar is the normalized planning configuration.
// It is an immutable value: loaded once per request and threaded through
// every call, never read from ambient state.
type BusinessCalendar struct {
	Days                map[int]DayHours // keyed by ISO weekday 1..7
	OpenDays            []int            // sorted weekdays with Enabled=true
	GlobalOpen          types.TimeString // min(open) over enabled days, fallback display bound
	GlobalClose         types.TimeString // max(close) over enabled days, fallback display bound
	DaysAhead           int
	SlotIntervalMinutes int
	MinLeadMinutes      int
}

// IsOpenOn reports whether the weekday of date is enabled
func (c BusinessCalendar) IsOpenOn(date time.Time) bool {
	return c.Days[ISOWeekday(date)].Enabled
}

// HoursFor returns the normalized hours for the weekday of date
func (c BusinessCalendar) HoursFor(date time.Time) DayHours {
	return c.Days[ISOWeekday(date)]
}

// ISOWeekday returns the ISO-8601 weekday number (1=Monday..7=Sunday)
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return WeekdaySunday
	}
	return wd
}

// NormalizePlanning coerces raw stored settings into a safe BusinessCalendar.
// It never fails: every malformed field is replaced with a default so the
// booking surface stays available. The returned anomalies describe each
// coercion for operator-visible logging; they are never shown to clients.
func NormalizePlanning(raw RawPlanning) (BusinessCalendar, []string) {
	var anomalies []string

	openDays := raw.OpenDays
	if len(openDays) == 0 {
		openDays = DefaultOpenDays
	}

	days := make(map[int]DayHours, WeekdaySunday)
	for weekday := WeekdayMonday; weekday <= WeekdaySunday; weekday++ {
		rawDay := raw.Days[weekday]

		enabled := containsDay(openDays, weekday)
		if rawDay.Enabled != nil {
			enabled = *rawDay.Enabled
		}

		open, err := types.NewTimeStringFromString(rawDay.Open)
		if err != nil {
			// Пустое значение - штатный случай, дефолт без предупреждения.
			if rawDay.Open != "" {
				anomalies = append(anomalies,
					fmt.Sprintf("weekday %d: invalid open time %q, using %s", weekday, rawDay.Open, DefaultOpenTime))
			}
			open = types.TimeString(DefaultOpenTime)
		}

		closeAt, err := types.NewTimeStringFromString(rawDay.Close)
		if err != nil {
			if rawDay.Close != "" {
				anomalies = append(anomalies,
					fmt.Sprintf("weekday %d: invalid close time %q, using %s", weekday, rawDay.Close, DefaultCloseTime))
			}
			closeAt = types.TimeString(DefaultCloseTime)
		}

		// An enabled day must have open < close; otherwise the pair is unusable
		// and both bounds fall back to defaults.
		if enabled && !open.IsBefore(closeAt) {
			anomalies = append(anomalies,
				fmt.Sprintf("weekday %d: open %s is not before close %s, using defaults", weekday, open, closeAt))
			open = types.TimeString(DefaultOpenTime)
			closeAt = types.TimeString(DefaultCloseTime)
		}

		days[weekday] = DayHours{Enabled: enabled, Open: open, Close: closeAt}
	}

	normalizedOpenDays := make([]int, 0, WeekdaySunday)
	for weekday := WeekdayMonday; weekday <= WeekdaySunday; weekday++ {
		if days[weekday].Enabled {
			normalizedOpenDays = append(normalizedOpenDays, weekday)
		}
	}
	sort.Ints(normalizedOpenDays)

	globalOpen := types.TimeString(DefaultOpenTime)
	globalClose := types.TimeString(DefaultCloseTime)
	for i, weekday := range normalizedOpenDays {
		day := days[weekday]
		if i == 0 {
			globalOpen = day.Open
			globalClose = day.Close
			continue
		}
		if day.Open.IsBefore(globalOpen) {
			globalOpen = day.Open
		}
		if day.Close.IsAfter(globalClose) {
			globalClose = day.Close
		}
	}

	daysAhead := raw.DaysAhead
	if daysAhead < MinDaysAhead {
		if raw.DaysAhead != 0 {
			anomalies = append(anomalies, fmt.Sprintf("days_ahead %d below minimum, using %d", raw.DaysAhead, DefaultDaysAhead))
		}
		daysAhead = DefaultDaysAhead
	}

	interval := raw.SlotIntervalMinutes
	if interval < MinSlotIntervalMinutes {
		if raw.SlotIntervalMinutes != 0 {
			anomalies = append(anomalies, fmt.Sprintf("slot_interval %d below minimum, using %d", raw.SlotIntervalMinutes, DefaultSlotIntervalMinutes))
		}
		interval = DefaultSlotIntervalMinutes
	}

	lead := raw.MinLeadMinutes
	if lead < MinLeadMinutesFloor {
		anomalies = append(anomalies, fmt.Sprintf("min_lead_minutes %d below zero, using %d", raw.MinLeadMinutes, DefaultMinLeadMinutes))
		lead = DefaultMinLeadMinutes
	}

	return BusinessCalendar{
		Days:                days,
		OpenDays:            normalizedOpenDays,
		GlobalOpen:          globalOpen,
		GlobalClose:         globalClose,
		DaysAhead:           daysAhead,
		SlotIntervalMinutes: interval,
		MinLeadMinutes:      lead,
	}, anomalies
}

func containsDay(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
