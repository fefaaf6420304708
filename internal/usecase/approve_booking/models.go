package approve_booking

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// Request модель запроса на одобрение заявки
type Request struct {
	BookingID int64 // ID заявки
	OwnerID   int64 // ID владельца техники, выполняющего действие
}

// Response модель ответа
type Response struct {
	ID          int64
	EquipmentID int64
	UserID      int64
	StartDate   time.Time
	EndDate     time.Time
	Status      domain.BookingStatus
	TotalAmount float64

	// CancelledBookingIDs заявки, автоматически отмененные из-за пересечения дат
	CancelledBookingIDs []int64
}
