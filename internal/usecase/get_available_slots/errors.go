package get_available_slots

import "errors"

var (
	// ErrPrestationNotFound возвращается, когда услуга не найдена
	ErrPrestationNotFound = errors.New("prestation not found")

	// ErrStaffNotEligible возвращается, когда выбранный мастер не выполняет услугу
	ErrStaffNotEligible = errors.New("staff member does not perform this prestation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
