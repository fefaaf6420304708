package create_booking

import (
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipment_id must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}

	if req.Days < domain.MinRentalDays || req.Days > domain.MaxRentalDays {
		return fmt.Errorf("%w: days must be between %d and %d", ErrInvalidInput, domain.MinRentalDays, domain.MaxRentalDays)
	}

	return nil
}
