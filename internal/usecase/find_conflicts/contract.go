package find_conflicts

import (
	"context"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// EquipmentRepository интерфейс репозитория техники
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetLiveByEquipment(ctx context.Context, equipmentID int64) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
