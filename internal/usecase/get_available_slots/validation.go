package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PrestationID <= 0 {
		return fmt.Errorf("%w: prestationID must be positive", ErrInvalidInput)
	}

	if req.StaffID < 0 {
		return fmt.Errorf("%w: staffID must not be negative", ErrInvalidInput)
	}

	return nil
}
