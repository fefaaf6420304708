package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	"github.com/m04kA/AgriRent-BookingService/pkg/ptr"
)

// UseCase use case одобрения заявки владельцем техники
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

// Execute одобряет заявку и отменяет все пересекающиеся с ней заявки в статусе pending.
// Все изменения выполняются в одной транзакции под блокировкой строки техники:
// либо применяются одобрение, каскад и уведомления целиком, либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ApproveBooking: booking=%d, owner=%d", req.BookingID, req.OwnerID)

	var (
		approved  *domain.Booking
		cancelled []int64
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Находим заявку, чтобы узнать технику
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 3. Блокируем технику: все изменения бронирований этой техники идут последовательно
		equipment, err := uc.equipmentRepo.LockByID(txCtx, booking.EquipmentID)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				uc.logger.Warn("ApproveBooking: equipment id=%d of booking id=%d not found", booking.EquipmentID, booking.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ApproveBooking: failed to lock equipment id=%d: %v", booking.EquipmentID, err)
			return fmt.Errorf("%w: failed to lock equipment: %v", ErrInternal, err)
		}

		// 4. Перечитываем заявку под блокировкой: статус мог измениться
		booking, err = uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 5. Проверка прав
		if !equipment.IsOwnedBy(req.OwnerID) {
			uc.logger.Warn("ApproveBooking: user=%d is not the owner of equipment id=%d", req.OwnerID, equipment.ID)
			return ErrAccessDenied
		}

		// 6. Повторная проверка конфликтов без учета самой заявки.
		// Выполняется до проверки статуса: заявка, проигравшая гонку, к этому моменту
		// уже отменена каскадом и должна получить ErrAlreadyBooked
		live, err := uc.bookingRepo.GetLiveByEquipment(txCtx, equipment.ID)
		if err != nil {
			uc.logger.Error("ApproveBooking: failed to get bookings of equipment id=%d: %v", equipment.ID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflicts := domain.FindConflicts(booking.Range(), live, ptr.Ptr(booking.ID))
		if hard, ok := domain.FirstHard(conflicts); ok {
			uc.logger.Warn("ApproveBooking: booking id=%d conflicts with confirmed booking id=%d (%s)",
				booking.ID, hard.BookingID, hard.Range)
			if uc.metrics != nil {
				uc.metrics.IncBookingConflict("approve")
			}
			return domain.NewBookedRangeError(ErrAlreadyBooked, hard)
		}

		// 7. Только заявки в статусе pending
		if !booking.IsPending() {
			uc.logger.Warn("ApproveBooking: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrInvalidTransition
		}

		// 8. Условное обновление статуса pending -> approved
		if err := uc.transition(txCtx, booking.ID, domain.StatusApproved, nil); err != nil {
			return err
		}
		booking.Status = domain.StatusApproved

		if err := uc.notify(txCtx, booking.UserID, booking.ID, domain.NotificationBookingApproved,
			"Booking approved",
			fmt.Sprintf("Your request for %q on %s was approved", booking.EquipmentTitle, booking.Range())); err != nil {
			return err
		}

		// 9. Каскад: отменяем пересекающиеся заявки в статусе pending
		for _, c := range domain.SoftConflicts(conflicts) {
			if err := uc.transition(txCtx, c.BookingID, domain.StatusCancelled, ptr.Ptr(domain.AutoCancellationReason)); err != nil {
				return err
			}

			if err := uc.notify(txCtx, c.UserID, c.BookingID, domain.NotificationBookingAutoCancelled,
				"Booking cancelled",
				fmt.Sprintf("Your request for %q on %s was cancelled: %s", booking.EquipmentTitle, c.Range, domain.AutoCancellationReason)); err != nil {
				return err
			}

			uc.logger.Info("ApproveBooking: auto-cancelled booking id=%d overlapping %s", c.BookingID, booking.Range())
			cancelled = append(cancelled, c.BookingID)
		}

		approved = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingTransition(string(domain.StatusApproved))
		for range cancelled {
			uc.metrics.IncBookingTransition(string(domain.StatusCancelled))
		}
	}

	uc.logger.Info("ApproveBooking: booking id=%d approved, %d overlapping request(s) cancelled", approved.ID, len(cancelled))

	return &Response{
		ID:                  approved.ID,
		EquipmentID:         approved.EquipmentID,
		UserID:              approved.UserID,
		StartDate:           approved.StartDate,
		EndDate:             approved.EndDate,
		Status:              approved.Status,
		TotalAmount:         approved.TotalAmount,
		CancelledBookingIDs: cancelled,
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ApproveBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ApproveBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// transition выполняет CAS-обновление статуса. Ноль затронутых строк означает,
// что заявка уже не в статусе pending
func (uc *UseCase) transition(ctx context.Context, id int64, to domain.BookingStatus, reason *string) error {
	err := uc.bookingRepo.TransitionFromPending(ctx, id, to, reason)
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingRepo.ErrStatusChanged) {
		uc.logger.Warn("ApproveBooking: booking id=%d is no longer pending", id)
		return ErrInvalidTransition
	}
	uc.logger.Error("ApproveBooking: failed to set status %s for booking id=%d: %v", to, id, err)
	return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
}

func (uc *UseCase) notify(ctx context.Context, userID, bookingID int64, kind domain.NotificationType, title, message string) error {
	_, err := uc.notificationRepo.Create(ctx, &domain.Notification{
		UserID:           userID,
		Type:             kind,
		Title:            title,
		Message:          message,
		RelatedBookingID: ptr.Ptr(bookingID),
	})
	if err != nil {
		uc.logger.Error("ApproveBooking: failed to notify user=%d about booking id=%d: %v", userID, bookingID, err)
		return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
	}
	return nil
}
