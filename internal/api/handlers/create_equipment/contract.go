package create_equipment

import (
	"context"

	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment/models"
)

type EquipmentService interface {
	Create(ctx context.Context, ownerID int64, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
