package find_conflicts

import (
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipment_id must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", ErrInvalidInput)
	}
	if !domain.NewDateRange(req.StartDate, req.EndDate).Valid() {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}
	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return fmt.Errorf("%w: exclude_booking_id must be positive", ErrInvalidInput)
	}
	return nil
}
