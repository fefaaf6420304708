package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment/models"
)

// Service сервис каталога техники
type Service struct {
	equipmentRepo EquipmentRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса техники
func NewService(
	equipmentRepo EquipmentRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Create размещает технику в каталоге
func (s *Service) Create(ctx context.Context, ownerID int64, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Create: owner=%d, title=%q", ownerID, req.Title)

	e, err := toDomain(ownerID, req)
	if err != nil {
		s.logger.Warn("Create: invalid request from owner=%d: %v", ownerID, err)
		return nil, err
	}

	created, err := s.equipmentRepo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Create: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: equipment id=%d created", created.ID)
	return models.FromDomainEquipment(created), nil
}

// ListAvailable возвращает технику, которая еще сдается (available_till не наступил)
func (s *Service) ListAvailable(ctx context.Context) (*models.EquipmentListResponse, error) {
	list, err := s.equipmentRepo.ListAvailable(ctx, domain.DateOf(s.timeProvider.Now()))
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEquipmentList(list), nil
}

// GetByID возвращает карточку техники
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetByID: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEquipment(e), nil
}

// GetByOwner возвращает технику владельца
func (s *Service) GetByOwner(ctx context.Context, ownerID int64) (*models.EquipmentListResponse, error) {
	list, err := s.equipmentRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEquipmentList(list), nil
}

// Delete удаляет технику владельца.
// Отказывает, пока есть заявки pending/approved/active, которые еще не закончились
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: equipment id=%d by user=%d", id, userID)

	today := domain.DateOf(s.timeProvider.Now())

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		e, err := s.equipmentRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				return ErrEquipmentNotFound
			}
			s.logger.Error("Delete: failed to lock equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if !e.IsOwnedBy(userID) {
			s.logger.Warn("Delete: user=%d is not the owner of equipment id=%d", userID, id)
			return ErrAccessDenied
		}

		live, err := s.bookingRepo.CountLiveEndingAfter(txCtx, id, today)
		if err != nil {
			s.logger.Error("Delete: failed to count bookings of equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		if live > 0 {
			s.logger.Warn("Delete: equipment id=%d has %d live booking(s)", id, live)
			return ErrHasBookings
		}

		if err := s.equipmentRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				return ErrEquipmentNotFound
			}
			s.logger.Error("Delete: repository error for equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Delete: equipment id=%d deleted", id)
		return nil
	})
}

// toDomain проверяет согласованность полей, которые не покрываются тегами validate
func toDomain(ownerID int64, req *models.CreateEquipmentRequest) (*domain.Equipment, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner_id must be positive", ErrInvalidInput)
	}

	pricing := domain.PricingType(req.PricingType)
	if !pricing.Valid() {
		return nil, fmt.Errorf("%w: unknown pricing type %q", ErrInvalidInput, req.PricingType)
	}

	if req.Price <= 0 || req.TransportCharge < 0 {
		return nil, fmt.Errorf("%w: price must be positive and transport charge non-negative", ErrInvalidInput)
	}

	from, err := domain.ParseDate(req.AvailableFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: availableFrom must be YYYY-MM-DD", ErrInvalidInput)
	}

	e := &domain.Equipment{
		OwnerID:           ownerID,
		Title:             req.Title,
		Category:          req.Category,
		Name:              req.Name,
		Brand:             req.Brand,
		Condition:         req.Condition,
		Description:       req.Description,
		State:             req.State,
		District:          req.District,
		VillageCity:       req.VillageCity,
		Price:             req.Price,
		PricingType:       pricing,
		TransportIncluded: req.TransportIncluded,
		TransportCharge:   req.TransportCharge,
		AvailableFrom:     from,
	}

	if req.AvailableTill != nil {
		till, err := domain.ParseDate(*req.AvailableTill)
		if err != nil {
			return nil, fmt.Errorf("%w: availableTill must be YYYY-MM-DD", ErrInvalidInput)
		}
		if till.Before(from) {
			return nil, fmt.Errorf("%w: availableTill must not be before availableFrom", ErrInvalidInput)
		}
		e.AvailableTill = &till
	}

	return e, nil
}
