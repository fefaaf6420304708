package create_booking

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	createBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EquipmentID int64  `json:"equipmentId" validate:"gt=0"`
	StartDate   string `json:"startDate" validate:"required"` // "2024-03-01"
	Days        int    `json:"days" validate:"gte=1,lte=365"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	EquipmentID     int64   `json:"equipmentId"`
	UserID          int64   `json:"userId"`
	OwnerID         int64   `json:"ownerId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Days            int     `json:"days"`
	Status          string  `json:"status"`
	EquipmentTitle  string  `json:"equipmentTitle"`
	PricingType     string  `json:"pricingType"`
	BaseAmount      float64 `json:"baseAmount"`
	TransportAmount float64 `json:"transportAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		EquipmentID: r.EquipmentID,
		StartDate:   startDate,
		Days:        r.Days,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		EquipmentID:     resp.EquipmentID,
		UserID:          resp.UserID,
		OwnerID:         resp.OwnerID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		Days:            resp.Days,
		Status:          string(resp.Status),
		EquipmentTitle:  resp.EquipmentTitle,
		PricingType:     string(resp.PricingType),
		BaseAmount:      resp.BaseAmount,
		TransportAmount: resp.TransportAmount,
		TotalAmount:     resp.TotalAmount,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
