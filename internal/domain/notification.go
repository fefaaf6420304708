package domain

import "time"

// NotificationType identifies the event a notification was created for
type NotificationType string

const (
	NotificationBookingRequested     NotificationType = "booking_requested"
	NotificationBookingApproved      NotificationType = "booking_approved"
	NotificationBookingRejected      NotificationType = "booking_rejected"
	NotificationBookingAutoCancelled NotificationType = "booking_auto_cancelled"
)

// Notification is an in-app message for a user
type Notification struct {
	ID               int64
	UserID           int64
	Type             NotificationType
	Title            string
	Message          string
	RelatedBookingID *int64
	IsRead           bool
	CreatedAt        time.Time
}
