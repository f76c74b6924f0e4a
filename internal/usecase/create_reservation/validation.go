package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessages человекочитаемые сообщения по тегам валидации
var validationMessages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"gt":       "%s must be positive",
	"gte":      "%s must not be negative",
	"max":      "%s is too long",
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		var valErrors validator.ValidationErrors
		if errors.As(err, &valErrors) && len(valErrors) > 0 {
			first := valErrors[0]
			if msg, ok := validationMessages[first.Tag()]; ok {
				return fmt.Errorf("%w: "+msg, ErrInvalidInput, first.Field())
			}
			return fmt.Errorf("%w: %s is invalid", ErrInvalidInput, first.Field())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.StartTime); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет дату и время записи против календаря салона
func validateSchedule(
	cal domain.BusinessCalendar,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if date.Before(today) {
		return ErrInvalidDate
	}

	maxDate := today.AddDate(0, 0, cal.DaysAhead-1)
	if date.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, cal.DaysAhead)
	}

	if !cal.IsOpenOn(date) {
		return ErrSalonClosed
	}

	hours := cal.HoursFor(date)
	if startTime.IsBefore(hours.Open) || !startTime.IsBefore(hours.Close) {
		return ErrOutsideOpeningHours
	}

	// Упреждение сравнивается по полным меткам времени в таймзоне салона
	minutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slotAt := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, now.Location())
	minStart := now.Add(time.Duration(cal.MinLeadMinutes) * time.Minute)
	if slotAt.Before(minStart) {
		return fmt.Errorf("%w: at least %d minutes of notice required", ErrTooSoon, cal.MinLeadMinutes)
	}

	return nil
}
