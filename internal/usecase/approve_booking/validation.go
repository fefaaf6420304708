package approve_booking

import "fmt"

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive", ErrInvalidInput)
	}
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: owner_id must be positive", ErrInvalidInput)
	}
	return nil
}
