package models

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// CreateEquipmentRequest запрос на размещение техники.
// Теги validate проверяются в HTTP слое
type CreateEquipmentRequest struct {
	Title             string  `json:"title" validate:"required,max=200"`
	Category          string  `json:"category" validate:"required,max=100"`
	Name              string  `json:"name" validate:"required,max=200"`
	Brand             *string `json:"brand,omitempty" validate:"omitempty,max=100"`
	Condition         *string `json:"condition,omitempty" validate:"omitempty,max=50"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	State             string  `json:"state" validate:"required,max=100"`
	District          string  `json:"district" validate:"required,max=100"`
	VillageCity       string  `json:"villageCity" validate:"required,max=100"`
	Price             float64 `json:"price" validate:"gt=0"`
	PricingType       string  `json:"pricingType" validate:"required,oneof=per_day per_hour per_acre per_season"`
	TransportIncluded bool    `json:"transportIncluded"`
	TransportCharge   float64 `json:"transportCharge" validate:"gte=0"`
	AvailableFrom     string  `json:"availableFrom" validate:"required"`           // "2024-03-01"
	AvailableTill     *string `json:"availableTill,omitempty" validate:"omitempty"` // открытое окно, если не указано
}

// EquipmentResponse ответ с данными техники
type EquipmentResponse struct {
	ID                int64     `json:"id"`
	OwnerID           int64     `json:"ownerId"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Name              string    `json:"name"`
	Brand             *string   `json:"brand,omitempty"`
	Condition         *string   `json:"condition,omitempty"`
	Description       *string   `json:"description,omitempty"`
	State             string    `json:"state"`
	District          string    `json:"district"`
	VillageCity       string    `json:"villageCity"`
	Price             float64   `json:"price"`
	PricingType       string    `json:"pricingType"`
	TransportIncluded bool      `json:"transportIncluded"`
	TransportCharge   float64   `json:"transportCharge"`
	AvailableFrom     string    `json:"availableFrom"`
	AvailableTill     *string   `json:"availableTill,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// EquipmentListResponse ответ со списком техники
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	resp := &EquipmentResponse{
		ID:                e.ID,
		OwnerID:           e.OwnerID,
		Title:             e.Title,
		Category:          e.Category,
		Name:              e.Name,
		Brand:             e.Brand,
		Condition:         e.Condition,
		Description:       e.Description,
		State:             e.State,
		District:          e.District,
		VillageCity:       e.VillageCity,
		Price:             e.Price,
		PricingType:       string(e.PricingType),
		TransportIncluded: e.TransportIncluded,
		TransportCharge:   e.TransportCharge,
		AvailableFrom:     e.AvailableFrom.Format(domain.DateFormat),
		CreatedAt:         e.CreatedAt,
	}

	if e.AvailableTill != nil {
		till := e.AvailableTill.Format(domain.DateFormat)
		resp.AvailableTill = &till
	}

	return resp
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(list []*domain.Equipment) *EquipmentListResponse {
	resp := &EquipmentListResponse{
		Equipment: make([]EquipmentResponse, 0, len(list)),
	}
	for _, e := range list {
		if item := FromDomainEquipment(e); item != nil {
			resp.Equipment = append(resp.Equipment, *item)
		}
	}
	return resp
}
