package reject_booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	rejectBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/reject_booking"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *rejectBooking.Request) (*rejectBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rejectBooking.Response), args.Error(1)
}

func doRequest(h *Handler, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/7/reject", body)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "7"})
	req = req.WithContext(middleware.WithUserID(req.Context(), 100))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *rejectBooking.Request) bool {
		return req.BookingID == 7 && req.OwnerID == 100 && req.Reason != nil && *req.Reason == "техника на ремонте"
	})).Return(&rejectBooking.Response{
		ID:                 7,
		Status:             domain.StatusCancelled,
		CancellationReason: "техника на ремонте",
	}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), strings.NewReader(`{"reason":"техника на ремонте"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body RejectBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body.Status)
	assert.Equal(t, "техника на ремонте", body.CancellationReason)
	uc.AssertExpectations(t)
}

func TestHandle_EmptyBody(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *rejectBooking.Request) bool {
		return req.Reason == nil
	})).Return(&rejectBooking.Response{ID: 7, Status: domain.StatusCancelled}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid", err: rejectBooking.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", err: rejectBooking.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "forbidden", err: rejectBooking.ErrAccessDenied, status: http.StatusForbidden},
		{name: "already processed", err: rejectBooking.ErrInvalidTransition, status: http.StatusConflict},
		{name: "internal", err: rejectBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(NewHandler(uc, logger.NewNop()), nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_BrokenBody(t *testing.T) {
	uc := new(MockUseCase)

	rec := doRequest(NewHandler(uc, logger.NewNop()), strings.NewReader(`{"reason":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
