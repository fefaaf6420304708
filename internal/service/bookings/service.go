package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно арендатору и владельцу техники
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && booking.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings получает аренды пользователя со статусом для отображения.
// Фильтр expired применяется после вычисления статуса, он не хранится в БД
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	now := s.timeProvider.Now()

	var (
		domainStatus *domain.BookingStatus
		onlyExpired  bool
	)
	if req.Status != nil {
		if *req.Status == domain.DisplayStatusExpired {
			onlyExpired = true
		} else {
			status, err := models.ToDomainBookingStatus(*req.Status)
			if err != nil {
				s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
				return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
			}
			domainStatus = &status
		}
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	// Статус в БД approved/active, но для пользователя аренда уже истекла
	filtered := bookings[:0]
	for _, b := range bookings {
		expired := b.IsExpired(now)
		if onlyExpired && !expired {
			continue
		}
		if domainStatus != nil && expired {
			continue
		}
		filtered = append(filtered, b)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(filtered), req.UserID)
	return models.FromDomainBookingList(filtered, now), nil
}

// GetOwnerRequests получает заявки на технику владельца
func (s *Service) GetOwnerRequests(ctx context.Context, req *models.GetOwnerRequestsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerRequests: fetching requests for owner=%d", req.OwnerID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerRequests: invalid filter for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerRequests: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerRequests: fetched %d bookings for owner=%d", len(bookings), req.OwnerID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}
