package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	"github.com/m04kA/AgriRent-BookingService/pkg/ptr"
)

// UseCase use case для создания заявки на аренду
type UseCase struct {
	equipmentRepo    EquipmentRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	userClient       UserServiceClient
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil
func NewUseCase(
	equipmentRepo EquipmentRepository,
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo:    equipmentRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		userClient:       userClient,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Строка техники блокируется (FOR UPDATE) на время транзакции, поэтому проверка
// конфликтов и вставка не пересекаются с одобрением соседних заявок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	requested := domain.RentalRange(req.StartDate, req.Days)
	uc.logger.Info("CreateBooking: user=%d, equipment=%d, range=%s, days=%d",
		req.UserID, req.EquipmentID, requested, req.Days)

	// 2. Имя арендатора для уведомления владельцу (вне транзакции, с деградацией)
	requesterName := uc.userClient.DisplayName(ctx, req.UserID)

	var result *domain.Booking

	// 3. Все изменения выполняем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем технику
		equipment, err := uc.equipmentRepo.LockByID(txCtx, req.EquipmentID)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				uc.logger.Warn("CreateBooking: equipment id=%d not found", req.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock equipment id=%d: %v", req.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}

		// 3.2. Владелец не может арендовать свою технику
		if equipment.IsOwnedBy(req.UserID) {
			uc.logger.Warn("CreateBooking: user=%d tried to rent own equipment id=%d", req.UserID, equipment.ID)
			return ErrSelfRental
		}

		// 3.3. Окно доступности
		if !equipment.Covers(requested) {
			uc.logger.Warn("CreateBooking: range %s is outside availability window of equipment id=%d",
				requested, equipment.ID)
			return ErrOutOfAvailabilityWindow
		}

		// 3.4. Конфликты: блокируют только подтвержденные бронирования
		bookings, err := uc.bookingRepo.GetLiveByEquipment(txCtx, equipment.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflicts := domain.FindConflicts(requested, bookings, nil)
		if hard, ok := domain.FirstHard(conflicts); ok {
			uc.logger.Warn("CreateBooking: range %s conflicts with confirmed booking id=%d (%s)",
				requested, hard.BookingID, hard.Range)
			uc.incConflict()
			return domain.NewBookedRangeError(ErrDateRangeBooked, hard)
		}
		if len(conflicts) > 0 {
			uc.logger.Info("CreateBooking: %d pending request(s) overlap, keeping as soft conflicts", len(conflicts))
		}

		// 3.5. Расчет стоимости
		amount := domain.CalculateAmount(equipment, req.Days)

		// 3.6. Создаем заявку в статусе pending
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			EquipmentID:     equipment.ID,
			UserID:          req.UserID,
			OwnerID:         equipment.OwnerID,
			StartDate:       requested.Start,
			EndDate:         requested.End,
			Days:            req.Days,
			Status:          domain.StatusPending,
			BaseAmount:      amount.Base,
			TransportAmount: amount.Transport,
			TotalAmount:     amount.Total,
			EquipmentTitle:  equipment.Title,
			PricingType:     equipment.PricingType,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.7. Уведомляем владельца
		_, err = uc.notificationRepo.Create(txCtx, &domain.Notification{
			UserID:           equipment.OwnerID,
			Type:             domain.NotificationBookingRequested,
			Title:            "New rental request",
			Message:          fmt.Sprintf("%s requested %q for %s (%d days, total %.2f)", requesterName, equipment.Title, requested, req.Days, amount.Total),
			RelatedBookingID: ptr.Ptr(created.ID),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to notify owner=%d: %v", equipment.OwnerID, err)
			return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingTransition(string(domain.StatusPending))
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalAmount)

	return &Response{
		ID:              result.ID,
		EquipmentID:     result.EquipmentID,
		UserID:          result.UserID,
		OwnerID:         result.OwnerID,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		Days:            result.Days,
		Status:          result.Status,
		BaseAmount:      result.BaseAmount,
		TransportAmount: result.TransportAmount,
		TotalAmount:     result.TotalAmount,
		EquipmentTitle:  result.EquipmentTitle,
		PricingType:     result.PricingType,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func (uc *UseCase) incConflict() {
	if uc.metrics != nil {
		uc.metrics.IncBookingConflict("create")
	}
}
