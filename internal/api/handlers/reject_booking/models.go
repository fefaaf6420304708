package reject_booking

import (
	rejectBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/reject_booking"
)

// RejectBookingRequest HTTP request model, тело запроса необязательно
type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// RejectBookingResponse HTTP response model
type RejectBookingResponse struct {
	ID                 int64  `json:"id"`
	EquipmentID        int64  `json:"equipmentId"`
	UserID             int64  `json:"userId"`
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}

func fromUseCaseResponse(resp *rejectBooking.Response) *RejectBookingResponse {
	return &RejectBookingResponse{
		ID:                 resp.ID,
		EquipmentID:        resp.EquipmentID,
		UserID:             resp.UserID,
		Status:             string(resp.Status),
		CancellationReason: resp.CancellationReason,
	}
}
