package reject_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	"github.com/m04kA/AgriRent-BookingService/pkg/ptr"
)

// UseCase use case отклонения заявки владельцем техники
type UseCase struct {
	equipmentRepo    EquipmentRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
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
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo:    equipmentRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute отклоняет заявку. Соседние заявки не затрагиваются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RejectBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RejectBooking: booking=%d, owner=%d", req.BookingID, req.OwnerID)

	reason := reasonOrDefault(req.Reason)
	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Находим заявку
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 3. Блокируем технику, чтобы не пересечься с одобрением
		equipment, err := uc.equipmentRepo.LockByID(txCtx, booking.EquipmentID)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RejectBooking: failed to lock equipment id=%d: %v", booking.EquipmentID, err)
			return fmt.Errorf("%w: failed to lock equipment: %v", ErrInternal, err)
		}

		// 4. Проверка прав
		if !equipment.IsOwnedBy(req.OwnerID) {
			uc.logger.Warn("RejectBooking: user=%d is not the owner of equipment id=%d", req.OwnerID, equipment.ID)
			return ErrAccessDenied
		}

		// 5. Условное обновление pending -> cancelled
		err = uc.bookingRepo.TransitionFromPending(txCtx, booking.ID, domain.StatusCancelled, ptr.Ptr(reason))
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				uc.logger.Warn("RejectBooking: booking id=%d is not pending", booking.ID)
				return ErrInvalidTransition
			}
			uc.logger.Error("RejectBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 6. Уведомляем арендатора
		_, err = uc.notificationRepo.Create(txCtx, &domain.Notification{
			UserID:           booking.UserID,
			Type:             domain.NotificationBookingRejected,
			Title:            "Booking rejected",
			Message:          fmt.Sprintf("Your request for %q on %s was rejected: %s", booking.EquipmentTitle, booking.Range(), reason),
			RelatedBookingID: ptr.Ptr(booking.ID),
		})
		if err != nil {
			uc.logger.Error("RejectBooking: failed to notify user=%d: %v", booking.UserID, err)
			return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingTransition(string(domain.StatusCancelled))
	}

	uc.logger.Info("RejectBooking: booking id=%d rejected", result.ID)

	return &Response{
		ID:                 result.ID,
		EquipmentID:        result.EquipmentID,
		UserID:             result.UserID,
		Status:             domain.StatusCancelled,
		CancellationReason: reason,
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RejectBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RejectBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
