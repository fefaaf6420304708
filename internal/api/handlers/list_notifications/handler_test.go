package list_notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/service/notifications"
	"github.com/m04kA/AgriRent-BookingService/internal/service/notifications/models"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, userID int64, unreadOnly bool) (*models.NotificationListResponse, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationListResponse), args.Error(1)
}

func doRequest(h *Handler, userID int64, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/notifications"+query, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(MockNotificationService)
	svc.On("List", mock.Anything, int64(200), true).Return(&models.NotificationListResponse{
		Notifications: []models.NotificationResponse{{ID: 1, Type: "booking_approved"}},
		UnreadCount:   1,
	}, nil)
	svc.On("List", mock.Anything, int64(300), false).Return(nil, notifications.ErrInternal)
	h := NewHandler(svc, logger.NewNop())

	rec := doRequest(h, 200, "?unreadOnly=true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unreadCount":1`)

	assert.Equal(t, http.StatusInternalServerError, doRequest(h, 300, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, 200, "?unreadOnly=maybe").Code)
	svc.AssertExpectations(t)
}
