package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
)

// UseCase use case для получения календаря занятости техники
type UseCase struct {
	equipmentRepo EquipmentRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	equipmentRepo EquipmentRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case получения календаря занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.EquipmentID <= 0 {
		uc.logger.Warn("GetAvailability: invalid equipment id")
		return nil, fmt.Errorf("%w: equipment_id must be positive", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: equipment=%d", req.EquipmentID)

	var (
		equipment *domain.Equipment
		bookings  []*domain.Booking
	)

	// 2. Технику и бронирования читаем из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		equipment, err = uc.equipmentRepo.GetByID(txCtx, req.EquipmentID)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				uc.logger.Warn("GetAvailability: equipment id=%d not found", req.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("GetAvailability: failed to get equipment id=%d: %v", req.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}

		bookings, err = uc.bookingRepo.GetLiveByEquipment(txCtx, req.EquipmentID)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Разворачиваем диапазоны в даты
	availability := domain.BuildAvailability(equipment.ID, bookings)

	uc.logger.Info("GetAvailability: equipment=%d, pending dates=%d, confirmed dates=%d",
		equipment.ID, len(availability.PendingDates), len(availability.ConfirmedDates))

	return &Response{
		EquipmentID:    equipment.ID,
		AvailableFrom:  equipment.AvailableFrom,
		AvailableTill:  equipment.AvailableTill,
		PendingDates:   availability.PendingDates,
		ConfirmedDates: availability.ConfirmedDates,
	}, nil
}
