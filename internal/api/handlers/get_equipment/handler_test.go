package get_equipment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment/models"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EquipmentResponse), args.Error(1)
}

func doRequest(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"equipmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(MockEquipmentService)
	svc.On("GetByID", mock.Anything, int64(5)).Return(&models.EquipmentResponse{ID: 5, Title: "Комбайн"}, nil)
	svc.On("GetByID", mock.Anything, int64(6)).Return(nil, equipment.ErrEquipmentNotFound)
	svc.On("GetByID", mock.Anything, int64(7)).Return(nil, equipment.ErrInternal)
	h := NewHandler(svc, logger.NewNop())

	rec := doRequest(h, "5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Комбайн")

	assert.Equal(t, http.StatusNotFound, doRequest(h, "6").Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "7").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "abc").Code)
}
