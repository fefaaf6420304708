package get_my_equipment

import (
	"context"

	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment/models"
)

type EquipmentService interface {
	GetByOwner(ctx context.Context, ownerID int64) (*models.EquipmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
