package approve_booking

import (
	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	approveBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/approve_booking"
)

// ApproveBookingResponse HTTP response model
type ApproveBookingResponse struct {
	ID                  int64   `json:"id"`
	EquipmentID         int64   `json:"equipmentId"`
	UserID              int64   `json:"userId"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	Status              string  `json:"status"`
	TotalAmount         float64 `json:"totalAmount"`
	CancelledBookingIDs []int64 `json:"cancelledBookingIds"`
}

func fromUseCaseResponse(resp *approveBooking.Response) *ApproveBookingResponse {
	cancelled := resp.CancelledBookingIDs
	if cancelled == nil {
		cancelled = []int64{}
	}

	return &ApproveBookingResponse{
		ID:                  resp.ID,
		EquipmentID:         resp.EquipmentID,
		UserID:              resp.UserID,
		StartDate:           resp.StartDate.Format(domain.DateFormat),
		EndDate:             resp.EndDate.Format(domain.DateFormat),
		Status:              string(resp.Status),
		TotalAmount:         resp.TotalAmount,
		CancelledBookingIDs: cancelled,
	}
}
