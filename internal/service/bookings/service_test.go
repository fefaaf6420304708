package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	"github.com/m04kA/AgriRent-BookingService/internal/service/bookings/models"
	"github.com/m04kA/AgriRent-BookingService/internal/testutil/memstore"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
	"github.com/m04kA/AgriRent-BookingService/pkg/ptr"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := NewService(store.Bookings(), logger.NewNop())
	svc.timeProvider = fixedTime{now: mustDate(t, "2024-03-10").Add(15 * time.Hour)}
	return svc, store
}

func seed(t *testing.T, store *memstore.Store, equipmentID, userID int64, status domain.BookingStatus, start, end string) int64 {
	t.Helper()
	return store.AddBooking(domain.Booking{
		EquipmentID: equipmentID,
		UserID:      userID,
		OwnerID:     100,
		StartDate:   mustDate(t, start),
		EndDate:     mustDate(t, end),
		Status:      status,
	})
}

func TestGetByID_Access(t *testing.T) {
	svc, store := newTestService(t)
	id := seed(t, store, 1, 200, domain.StatusPending, "2024-03-12", "2024-03-14")

	resp, err := svc.GetByID(context.Background(), id, 200)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-03-12", resp.StartDate)

	_, err = svc.GetByID(context.Background(), id, 100)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), id, 300)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 999, 200)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_DisplayStatus(t *testing.T) {
	svc, store := newTestService(t)
	finished := seed(t, store, 1, 200, domain.StatusApproved, "2024-03-01", "2024-03-09")
	running := seed(t, store, 2, 200, domain.StatusActive, "2024-03-08", "2024-03-13")
	seed(t, store, 3, 200, domain.StatusCancelled, "2024-03-01", "2024-03-02")
	seed(t, store, 3, 201, domain.StatusApproved, "2024-03-01", "2024-03-02")

	all, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 200})
	require.NoError(t, err)
	require.Len(t, all.Bookings, 3)

	byID := map[int64]models.BookingResponse{}
	for _, b := range all.Bookings {
		byID[b.ID] = b
	}
	assert.Equal(t, domain.DisplayStatusExpired, byID[finished].Status)
	assert.Equal(t, 0, byID[finished].DaysRemaining)
	assert.Equal(t, "active", byID[running].Status)
	assert.Equal(t, 3, byID[running].DaysRemaining)

	expired, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 200, Status: ptr.Ptr("expired")})
	require.NoError(t, err)
	require.Len(t, expired.Bookings, 1)
	assert.Equal(t, finished, expired.Bookings[0].ID)

	approved, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 200, Status: ptr.Ptr("approved")})
	require.NoError(t, err)
	assert.Empty(t, approved.Bookings)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 200, Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOwnerRequests_Filter(t *testing.T) {
	svc, store := newTestService(t)
	seed(t, store, 1, 200, domain.StatusPending, "2024-03-12", "2024-03-14")
	b := seed(t, store, 2, 201, domain.StatusPending, "2024-03-12", "2024-03-14")
	seed(t, store, 2, 202, domain.StatusCancelled, "2024-03-12", "2024-03-14")

	resp, err := svc.GetOwnerRequests(context.Background(), &models.GetOwnerRequestsRequest{
		OwnerID:     100,
		EquipmentID: ptr.Ptr(int64(2)),
		Status:      ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, b, resp.Bookings[0].ID)

	none, err := svc.GetOwnerRequests(context.Background(), &models.GetOwnerRequestsRequest{OwnerID: 555})
	require.NoError(t, err)
	assert.NotNil(t, none.Bookings)
	assert.Empty(t, none.Bookings)
}
