package create_equipment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment/models"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Create(ctx context.Context, ownerID int64, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EquipmentResponse), args.Error(1)
}

const validBody = `{
	"title": "Трактор Mahindra 575",
	"category": "tractor",
	"name": "Mahindra 575 DI",
	"state": "Punjab",
	"district": "Ludhiana",
	"villageCity": "Khanna",
	"price": 2500,
	"pricingType": "per_day",
	"transportCharge": 500,
	"availableFrom": "2024-03-01"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipment", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 100))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := new(MockEquipmentService)
	svc.On("Create", mock.Anything, int64(100), mock.MatchedBy(func(req *models.CreateEquipmentRequest) bool {
		return req.PricingType == "per_day" && req.Price == 2500
	})).Return(&models.EquipmentResponse{ID: 5, OwnerID: 100}, nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()), validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	svc.AssertExpectations(t)
}

func TestHandle_ValidationFails(t *testing.T) {
	svc := new(MockEquipmentService)
	h := NewHandler(svc, logger.NewNop())

	rec := doRequest(h, strings.Replace(validBody, `"per_day"`, `"per_week"`, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PricingType")

	rec = doRequest(h, strings.Replace(validBody, `"price": 2500`, `"price": 0`, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, `{"title": "x", "unknown": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_ServiceErrors(t *testing.T) {
	svc := new(MockEquipmentService)
	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: availableFrom must be YYYY-MM-DD", equipment.ErrInvalidInput)).Once()
	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, equipment.ErrInternal).Once()
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, validBody).Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, validBody).Code)
}
