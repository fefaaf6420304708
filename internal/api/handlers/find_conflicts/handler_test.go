package find_conflicts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	findConflicts "github.com/m04kA/AgriRent-BookingService/internal/usecase/find_conflicts"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *findConflicts.Request) (*findConflicts.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*findConflicts.Response), args.Error(1)
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment/5/conflicts?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"equipmentId": "5"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsConflicts(t *testing.T) {
	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *findConflicts.Request) bool {
		return req.EquipmentID == 5 && req.StartDate.Equal(start) && req.EndDate.Equal(end) &&
			req.ExcludeBookingID != nil && *req.ExcludeBookingID == 3
	})).Return(&findConflicts.Response{
		EquipmentID: 5,
		Range:       domain.NewDateRange(start, end),
		HasHard:     true,
		Conflicts: []domain.Conflict{{
			BookingID: 1,
			UserID:    200,
			Status:    domain.StatusApproved,
			Range:     domain.NewDateRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start),
			Severity:  domain.SeverityHard,
		}},
	}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), "startDate=2024-03-05&endDate=2024-03-07&excludeBookingId=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ConflictsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.HasHard)
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "hard", body.Conflicts[0].Severity)
	assert.Equal(t, "2024-03-05", body.Conflicts[0].EndDate)
	uc.AssertExpectations(t)
}

func TestHandle_QueryValidation(t *testing.T) {
	uc := new(MockUseCase)
	h := NewHandler(uc, logger.NewNop())

	for _, q := range []string{
		"",
		"startDate=2024-03-05",
		"startDate=05.03.2024&endDate=2024-03-07",
		"startDate=2024-03-05&endDate=2024-03-07&excludeBookingId=abc",
	} {
		assert.Equal(t, http.StatusBadRequest, doRequest(h, q).Code, q)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: findConflicts.ErrInvalidInput, status: http.StatusBadRequest},
		{err: findConflicts.ErrEquipmentNotFound, status: http.StatusNotFound},
		{err: findConflicts.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		uc := new(MockUseCase)
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

		rec := doRequest(NewHandler(uc, logger.NewNop()), "startDate=2024-03-07&endDate=2024-03-05")
		assert.Equal(t, tt.status, rec.Code)
	}
}
