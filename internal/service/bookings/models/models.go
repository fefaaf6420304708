package models

import (
	"errors"
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение аренд пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // pending, approved, active, cancelled или expired
}

// GetOwnerRequestsRequest запрос на получение заявок на технику владельца
type GetOwnerRequestsRequest struct {
	OwnerID     int64   `json:"ownerId"`
	EquipmentID *int64  `json:"equipmentId,omitempty"` // Фильтр по технике (опционально)
	Status      *string `json:"status,omitempty"`      // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOwnerRequestsRequest) ToDomainFilter() (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		OwnerID:     r.OwnerID,
		EquipmentID: r.EquipmentID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipmentId"`
	UserID      int64  `json:"userId"`
	OwnerID     int64  `json:"ownerId"`
	StartDate   string `json:"startDate"` // "2024-03-01"
	EndDate     string `json:"endDate"`
	Days        int    `json:"days"`

	// Status статус для отображения: expired вместо approved/active после окончания аренды
	Status        string `json:"status"`
	DaysRemaining int    `json:"daysRemaining"`

	BaseAmount      float64 `json:"baseAmount"`
	TransportAmount float64 `json:"transportAmount"`
	TotalAmount     float64 `json:"totalAmount"`

	// Денормализованные данные
	EquipmentTitle string `json:"equipmentTitle"`
	PricingType    string `json:"pricingType"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO на момент now
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		EquipmentID:        b.EquipmentID,
		UserID:             b.UserID,
		OwnerID:            b.OwnerID,
		StartDate:          b.StartDate.Format(domain.DateFormat),
		EndDate:            b.EndDate.Format(domain.DateFormat),
		Days:               b.Days,
		Status:             b.DisplayStatus(now),
		DaysRemaining:      b.DaysRemaining(now),
		BaseAmount:         b.BaseAmount,
		TransportAmount:    b.TransportAmount,
		TotalAmount:        b.TotalAmount,
		EquipmentTitle:     b.EquipmentTitle,
		PricingType:        string(b.PricingType),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusApproved, domain.StatusActive, domain.StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
