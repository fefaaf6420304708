package get_availability

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	getAvailability "github.com/m04kA/AgriRent-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	EquipmentID    int64    `json:"equipmentId"`
	AvailableFrom  string   `json:"availableFrom"`
	AvailableTill  *string  `json:"availableTill,omitempty"`
	PendingDates   []string `json:"pendingDates"`
	ConfirmedDates []string `json:"confirmedDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		EquipmentID:    resp.EquipmentID,
		AvailableFrom:  resp.AvailableFrom.Format(domain.DateFormat),
		PendingDates:   formatDates(resp.PendingDates),
		ConfirmedDates: formatDates(resp.ConfirmedDates),
	}

	if resp.AvailableTill != nil {
		till := resp.AvailableTill.Format(domain.DateFormat)
		result.AvailableTill = &till
	}

	return result
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}
