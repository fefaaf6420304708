package create_booking

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64     // ID арендатора
	EquipmentID int64     // ID техники
	StartDate   time.Time // Дата начала аренды (без времени)
	Days        int       // Количество дней аренды
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	EquipmentID int64
	UserID      int64
	OwnerID     int64
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Status      domain.BookingStatus

	// Расчет стоимости на момент создания
	BaseAmount      float64
	TransportAmount float64
	TotalAmount     float64

	EquipmentTitle string
	PricingType    domain.PricingType

	CreatedAt time.Time
}
