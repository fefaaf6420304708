package delete_equipment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Delete(ctx context.Context, id int64, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func doRequest(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/equipment/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"equipmentId": id})
	req = req.WithContext(middleware.WithUserID(req.Context(), 100))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(MockEquipmentService)
	svc.On("Delete", mock.Anything, int64(1), int64(100)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2), int64(100)).Return(equipment.ErrHasBookings)
	svc.On("Delete", mock.Anything, int64(3), int64(100)).Return(equipment.ErrAccessDenied)
	svc.On("Delete", mock.Anything, int64(4), int64(100)).Return(equipment.ErrEquipmentNotFound)
	svc.On("Delete", mock.Anything, int64(5), int64(100)).Return(equipment.ErrInternal)
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusNoContent, doRequest(h, "1").Code)
	assert.Equal(t, http.StatusConflict, doRequest(h, "2").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(h, "3").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(h, "4").Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "5").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "x").Code)
}
