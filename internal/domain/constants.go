package domain

// Default planning values, substituted whenever stored settings are
// missing or malformed
const (
	DefaultOpenTime            = "10:00"
	DefaultCloseTime           = "20:00"
	DefaultSlotIntervalMinutes = 30
	DefaultDaysAhead           = 30
	DefaultMinLeadMinutes      = 0
	DefaultDurationMinutes     = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MinDaysAhead           = 1
	MinLeadMinutesFloor    = 0
	MaxClientNoteLength    = 500
)

// Weekday numbers follow ISO-8601: 1=Monday .. 7=Sunday
const (
	WeekdayMonday = 1
	WeekdaySunday = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultOpenDays дни работы салона по умолчанию (понедельник - суббота)
var DefaultOpenDays = []int{1, 2, 3, 4, 5, 6}

// BlockingStatuses статусы, при которых бронь занимает слот.
// Используются при подсчете конфликтов расписания.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusPublished,
}
