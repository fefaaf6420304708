package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	"github.com/m04kA/AgriRent-BookingService/internal/testutil/memstore"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dates(t *testing.T, ss ...string) []time.Time {
	out := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		out = append(out, mustDate(t, s))
	}
	return out
}

func TestExecute_PartitionsDates(t *testing.T) {
	store := memstore.New()
	equipmentID := store.AddEquipment(domain.Equipment{OwnerID: 1, Title: "Harvester", AvailableFrom: mustDate(t, "2024-01-01")})

	add := func(status domain.BookingStatus, start, end string) {
		store.AddBooking(domain.Booking{
			EquipmentID: equipmentID,
			UserID:      2,
			OwnerID:     1,
			StartDate:   mustDate(t, start),
			EndDate:     mustDate(t, end),
			Status:      status,
		})
	}
	add(domain.StatusPending, "2024-03-01", "2024-03-02")
	add(domain.StatusPending, "2024-03-02", "2024-03-03")
	add(domain.StatusApproved, "2024-03-10", "2024-03-11")
	add(domain.StatusActive, "2024-03-11", "2024-03-12")
	add(domain.StatusCancelled, "2024-04-01", "2024-04-05")

	uc := NewUseCase(store.Equipment(), store.Bookings(), store.TxManager(), logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{EquipmentID: equipmentID})
	require.NoError(t, err)

	assert.Equal(t, dates(t, "2024-03-01", "2024-03-02", "2024-03-03"), resp.PendingDates)
	assert.Equal(t, dates(t, "2024-03-10", "2024-03-11", "2024-03-12"), resp.ConfirmedDates)
	assert.Nil(t, resp.AvailableTill)
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	store := memstore.New()
	uc := NewUseCase(store.Equipment(), store.Bookings(), store.TxManager(), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{EquipmentID: 5})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	_, err = uc.Execute(context.Background(), &Request{EquipmentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
