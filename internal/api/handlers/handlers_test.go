package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

func TestRespondBookedRange(t *testing.T) {
	sentinel := fmt.Errorf("dates are already booked")
	err := domain.NewBookedRangeError(sentinel, domain.Conflict{
		BookingID: 7,
		Range:     domain.NewDateRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
	})

	rec := httptest.NewRecorder()
	RespondBookedRange(rec, "занято", err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ConflictBookingID)
	assert.Equal(t, "2024-03-01", body.ConflictStartDate)
	assert.Equal(t, "2024-03-05", body.ConflictEndDate)

	rec = httptest.NewRecorder()
	RespondBookedRange(rec, "занято", sentinel)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotContains(t, rec.Body.String(), "conflictStartDate")
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Days int `json:"days"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"days":3}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, 3, v.Days)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"days":3,"hack":true}`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Title       string  `validate:"required,max=5"`
		Price       float64 `validate:"gt=0"`
		PricingType string  `validate:"oneof=per_day per_hour"`
	}

	assert.NoError(t, ValidateStruct(payload{Title: "ok", Price: 1, PricingType: "per_day"}))

	err := ValidateStruct(payload{Title: "too long", Price: 0, PricingType: "weekly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
	assert.Contains(t, err.Error(), "Price")
	assert.Contains(t, err.Error(), "PricingType")
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), msgInternalError)
}
