package get_owner_requests

import (
	"strconv"

	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(ownerID int64, equipmentIDStr, statusStr string) (*models.GetOwnerRequestsRequest, error) {
	req := &models.GetOwnerRequestsRequest{
		OwnerID: ownerID,
	}

	// Парсим equipmentId если указан
	if equipmentIDStr != "" {
		equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.EquipmentID = &equipmentID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
