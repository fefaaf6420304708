package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/notification"
	"github.com/m04kA/AgriRent-BookingService/internal/service/notifications/models"
)

// Service сервис уведомлений пользователя
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List возвращает уведомления пользователя, новые первыми
func (s *Service) List(ctx context.Context, userID int64, unreadOnly bool) (*models.NotificationListResponse, error) {
	list, err := s.notificationRepo.GetByUserID(ctx, userID, unreadOnly)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainNotificationList(list), nil
}

// MarkRead отмечает уведомление прочитанным. Чужие уведомления не видны
func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// PurgeRead удаляет прочитанные уведомления старше retention. Вызывается планировщиком
func (s *Service) PurgeRead(ctx context.Context, now time.Time, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: retention must be positive", ErrInvalidInput)
	}

	deleted, err := s.notificationRepo.DeleteReadBefore(ctx, now.Add(-retention))
	if err != nil {
		s.logger.Error("PurgeRead: repository error: %v", err)
		return 0, fmt.Errorf("%w: PurgeRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeRead: deleted %d read notification(s) older than %s", deleted, retention)
	return deleted, nil
}
