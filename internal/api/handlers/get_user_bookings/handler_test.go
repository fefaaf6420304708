package get_user_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings"
	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings/models"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings"+query, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 200))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PassesStatus(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.UserID == 200 && req.Status != nil && *req.Status == "expired"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, Status: "expired"}}}, nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()), "?status=expired")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	svc.AssertExpectations(t)
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetUserBookings", mock.Anything, &models.GetUserBookingsRequest{UserID: 200}).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.Status != nil && *req.Status == "unknown"
	})).Return(nil, bookings.ErrInvalidInput)
	svc.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.Status == nil
	})).Return(nil, bookings.ErrInternal)
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "?status=unknown").Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "").Code)
}
