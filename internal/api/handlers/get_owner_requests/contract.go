package get_owner_requests

import (
	"context"

	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOwnerRequests(ctx context.Context, req *models.GetOwnerRequestsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
