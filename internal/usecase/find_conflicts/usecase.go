package find_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
)

// UseCase use case поиска бронирований, пересекающихся с диапазоном дат
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

// Execute возвращает все заявки pending/approved/active, пересекающиеся с диапазоном.
// Ничего не изменяет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindConflicts: validation failed: %v", err)
		return nil, err
	}

	requested := domain.NewDateRange(req.StartDate, req.EndDate)
	uc.logger.Info("FindConflicts: equipment=%d, range=%s", req.EquipmentID, requested)

	var bookings []*domain.Booking

	// 2. Проверяем технику и читаем бронирования
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := uc.equipmentRepo.GetByID(txCtx, req.EquipmentID); err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				uc.logger.Warn("FindConflicts: equipment id=%d not found", req.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("FindConflicts: failed to get equipment id=%d: %v", req.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}

		var err error
		bookings, err = uc.bookingRepo.GetLiveByEquipment(txCtx, req.EquipmentID)
		if err != nil {
			uc.logger.Error("FindConflicts: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Классифицируем конфликты
	conflicts := domain.FindConflicts(requested, bookings, req.ExcludeBookingID)
	_, hasHard := domain.FirstHard(conflicts)

	uc.logger.Info("FindConflicts: equipment=%d, found %d conflict(s), hard=%t", req.EquipmentID, len(conflicts), hasHard)

	return &Response{
		EquipmentID: req.EquipmentID,
		Range:       requested,
		Conflicts:   conflicts,
		HasHard:     hasHard,
	}, nil
}
