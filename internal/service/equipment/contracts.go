package equipment

import (
	"context"
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// EquipmentRepository интерфейс репозитория техники
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	LockByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ListAvailable(ctx context.Context, today time.Time) ([]*domain.Equipment, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountLiveEndingAfter(ctx context.Context, equipmentID int64, from time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
