package notifications

import (
	"context"
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
