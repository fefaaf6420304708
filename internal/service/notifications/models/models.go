package models

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// NotificationResponse ответ с уведомлением
type NotificationResponse struct {
	ID               int64     `json:"id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	RelatedBookingID *int64    `json:"relatedBookingId,omitempty"`
	IsRead           bool      `json:"isRead"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(list []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
	}

	for _, n := range list {
		if !n.IsRead {
			resp.UnreadCount++
		}
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:               n.ID,
			Type:             string(n.Type),
			Title:            n.Title,
			Message:          n.Message,
			RelatedBookingID: n.RelatedBookingID,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}

	return resp
}
