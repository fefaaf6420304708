package create_booking

import (
	"context"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// EquipmentRepository интерфейс репозитория техники
type EquipmentRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetLiveByEquipment(ctx context.Context, equipmentID int64) ([]*domain.Booking, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	DisplayName(ctx context.Context, userID int64) string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бизнес-событий бронирования
type Metrics interface {
	IncBookingTransition(to string)
	IncBookingConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
