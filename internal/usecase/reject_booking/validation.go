package reject_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

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
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReason {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReason)
	}
	return nil
}

// reasonOrDefault возвращает причину отклонения, пустая причина заменяется стандартной
func reasonOrDefault(reason *string) string {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return domain.OwnerRejectionReason
	}
	return strings.TrimSpace(*reason)
}
