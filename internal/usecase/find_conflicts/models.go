package find_conflicts

import (
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

// Request модель запроса поиска конфликтов
type Request struct {
	EquipmentID      int64
	StartDate        time.Time
	EndDate          time.Time
	ExcludeBookingID *int64 // Заявка, которую не учитывать (повторная проверка самой заявки)
}

// Response модель ответа
type Response struct {
	EquipmentID int64
	Range       domain.DateRange
	Conflicts   []domain.Conflict
	HasHard     bool // Есть конфликт с подтвержденным бронированием
}
