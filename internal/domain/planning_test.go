package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohoustanley/barbeshop/pkg/types"
)

func TestNormalizePlanning_Defaults(t *testing.T) {
	cal, anomalies := NormalizePlanning(RawPlanning{})

	assert.Empty(t, anomalies)
	assert.Equal(t, DefaultDaysAhead, cal.DaysAhead)
	assert.Equal(t, DefaultSlotIntervalMinutes, cal.SlotIntervalMinutes)
	assert.Equal(t, DefaultMinLeadMinutes, cal.MinLeadMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cal.OpenDays)
	assert.Equal(t, types.TimeString(DefaultOpenTime), cal.GlobalOpen)
	assert.Equal(t, types.TimeString(DefaultCloseTime), cal.GlobalClose)

	require.Len(t, cal.Days, 7)
	assert.True(t, cal.Days[WeekdayMonday].Enabled)
	assert.False(t, cal.Days[WeekdaySunday].Enabled)
}

func TestNormalizePlanning_InvalidTimes(t *testing.T) {
	enabled := true
	cal, anomalies := NormalizePlanning(RawPlanning{
		Days: map[int]RawDayHours{
			WeekdayMonday: {Enabled: &enabled, Open: "9:00", Close: "25:99"},
		},
	})

	// Оба времени не прошли строгую валидацию HH:MM.
	assert.Len(t, anomalies, 2)
	day := cal.Days[WeekdayMonday]
	assert.True(t, day.Enabled)
	assert.Equal(t, types.TimeString(DefaultOpenTime), day.Open)
	assert.Equal(t, types.TimeString(DefaultCloseTime), day.Close)
}

func TestNormalizePlanning_OpenNotBeforeClose(t *testing.T) {
	enabled := true
	cal, anomalies := NormalizePlanning(RawPlanning{
		Days: map[int]RawDayHours{
			WeekdayMonday: {Enabled: &enabled, Open: "18:00", Close: "09:00"},
		},
	})

	require.NotEmpty(t, anomalies)
	day := cal.Days[WeekdayMonday]
	assert.Equal(t, types.TimeString(DefaultOpenTime), day.Open)
	assert.Equal(t, types.TimeString(DefaultCloseTime), day.Close)
}

func TestNormalizePlanning_EnabledFlagOverridesLegacyList(t *testing.T) {
	off := false
	on := true
	cal, _ := NormalizePlanning(RawPlanning{
		OpenDays: []int{WeekdayMonday},
		Days: map[int]RawDayHours{
			WeekdayMonday: {Enabled: &off, Open: "10:00", Close: "20:00"},
			WeekdaySunday: {Enabled: &on, Open: "11:00", Close: "17:00"},
		},
	})

	assert.False(t, cal.Days[WeekdayMonday].Enabled)
	assert.True(t, cal.Days[WeekdaySunday].Enabled)
	assert.Equal(t, []int{WeekdaySunday}, cal.OpenDays)
}

func TestNormalizePlanning_GlobalEnvelope(t *testing.T) {
	on := true
	cal, anomalies := NormalizePlanning(RawPlanning{
		OpenDays: []int{WeekdayMonday, WeekdayMonday + 1},
		Days: map[int]RawDayHours{
			WeekdayMonday:     {Enabled: &on, Open: "09:00", Close: "12:00"},
			WeekdayMonday + 1: {Enabled: &on, Open: "10:00", Close: "21:30"},
		},
	})

	assert.Empty(t, anomalies)
	assert.Equal(t, types.TimeString("09:00"), cal.GlobalOpen)
	assert.Equal(t, types.TimeString("21:30"), cal.GlobalClose)
}

func TestNormalizePlanning_ClampsNumericSettings(t *testing.T) {
	cal, anomalies := NormalizePlanning(RawPlanning{
		DaysAhead:           -5,
		SlotIntervalMinutes: 1,
		MinLeadMinutes:      -60,
	})

	assert.Len(t, anomalies, 3)
	assert.Equal(t, DefaultDaysAhead, cal.DaysAhead)
	assert.Equal(t, DefaultSlotIntervalMinutes, cal.SlotIntervalMinutes)
	assert.Equal(t, DefaultMinLeadMinutes, cal.MinLeadMinutes)
}

func TestISOWeekday(t *testing.T) {
	// 2025-06-02 - понедельник, 2025-06-08 - воскресенье.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, WeekdayMonday, ISOWeekday(monday))
	assert.Equal(t, WeekdaySunday, ISOWeekday(sunday))
}

func TestBusinessCalendar_IsOpenOn(t *testing.T) {
	cal, _ := NormalizePlanning(RawPlanning{})

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, cal.IsOpenOn(monday))
	assert.False(t, cal.IsOpenOn(sunday))

	hours := cal.HoursFor(monday)
	assert.Equal(t, types.TimeString(DefaultOpenTime), hours.Open)
}
