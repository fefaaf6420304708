package find_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	"github.com/m04kA/AgriRent-BookingService/internal/testutil/memstore"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
	"github.com/m04kA/AgriRent-BookingService/pkg/ptr"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

type env struct {
	uc          *UseCase
	store       *memstore.Store
	equipmentID int64
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	equipmentID := store.AddEquipment(domain.Equipment{OwnerID: 1, Title: "Seed drill", AvailableFrom: mustDate(t, "2024-01-01")})
	return &env{
		uc:          NewUseCase(store.Equipment(), store.Bookings(), store.TxManager(), logger.NewNop()),
		store:       store,
		equipmentID: equipmentID,
	}
}

func (e *env) add(t *testing.T, status domain.BookingStatus, start, end string) int64 {
	t.Helper()
	return e.store.AddBooking(domain.Booking{
		EquipmentID: e.equipmentID,
		UserID:      9,
		OwnerID:     1,
		StartDate:   mustDate(t, start),
		EndDate:     mustDate(t, end),
		Status:      status,
	})
}

func (e *env) find(t *testing.T, start, end string, exclude *int64) *Response {
	t.Helper()
	resp, err := e.uc.Execute(context.Background(), &Request{
		EquipmentID:      e.equipmentID,
		StartDate:        mustDate(t, start),
		EndDate:          mustDate(t, end),
		ExcludeBookingID: exclude,
	})
	require.NoError(t, err)
	return resp
}

func TestExecute_InclusiveBoundary(t *testing.T) {
	e := newEnv(t)
	id := e.add(t, domain.StatusApproved, "2024-03-05", "2024-03-10")

	touching := e.find(t, "2024-03-01", "2024-03-05", nil)
	require.Len(t, touching.Conflicts, 1)
	assert.Equal(t, id, touching.Conflicts[0].BookingID)
	assert.Equal(t, domain.SeverityHard, touching.Conflicts[0].Severity)
	assert.True(t, touching.HasHard)

	apart := e.find(t, "2024-03-01", "2024-03-04", nil)
	assert.Empty(t, apart.Conflicts)
	assert.False(t, apart.HasHard)
}

func TestExecute_SeveritiesAndExclusion(t *testing.T) {
	e := newEnv(t)
	pending := e.add(t, domain.StatusPending, "2024-03-01", "2024-03-03")
	active := e.add(t, domain.StatusActive, "2024-03-03", "2024-03-04")
	e.add(t, domain.StatusCancelled, "2024-03-01", "2024-03-10")

	resp := e.find(t, "2024-03-02", "2024-03-06", nil)
	require.Len(t, resp.Conflicts, 2)
	assert.Equal(t, pending, resp.Conflicts[0].BookingID)
	assert.Equal(t, domain.SeveritySoft, resp.Conflicts[0].Severity)
	assert.Equal(t, active, resp.Conflicts[1].BookingID)
	assert.Equal(t, domain.SeverityHard, resp.Conflicts[1].Severity)

	excluded := e.find(t, "2024-03-02", "2024-03-06", ptr.Ptr(active))
	require.Len(t, excluded.Conflicts, 1)
	assert.False(t, excluded.HasHard)
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		EquipmentID: e.equipmentID,
		StartDate:   mustDate(t, "2024-03-05"),
		EndDate:     mustDate(t, "2024-03-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.uc.Execute(context.Background(), &Request{
		EquipmentID: 404,
		StartDate:   mustDate(t, "2024-03-01"),
		EndDate:     mustDate(t, "2024-03-05"),
	})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
