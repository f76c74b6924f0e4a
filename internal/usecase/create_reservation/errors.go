package create_reservation

import "errors"

var (
	// ErrPrestationNotFound возвращается, когда услуга не найдена
	ErrPrestationNotFound = errors.New("prestation not found")

	// ErrStaffNotEligible возвращается, когда выбранный мастер не выполняет услугу
	ErrStaffNotEligible = errors.New("staff member does not perform this prestation")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrOutsideOpeningHours возвращается, когда время вне часов работы дня
	ErrOutsideOpeningHours = errors.New("time is outside opening hours")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTooSoon возвращается, когда слот нарушает минимальное время упреждения
	ErrTooSoon = errors.New("slot violates minimum lead time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
