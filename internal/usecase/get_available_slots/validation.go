package get_available_slots

import (
	"fmt"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отсечение происходит до обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}

	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d exceeds maximum %d",
			ErrInvalidInput, req.DurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}
