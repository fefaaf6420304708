package reject_booking

import "github.com/m04kA/AgriRent-BookingService/internal/domain"

// Request модель запроса на отклонение заявки
type Request struct {
	BookingID int64
	OwnerID   int64
	Reason    *string // Причина отклонения (опционально)
}

// Response модель ответа
type Response struct {
	ID                 int64
	EquipmentID        int64
	UserID             int64
	Status             domain.BookingStatus
	CancellationReason string
}
