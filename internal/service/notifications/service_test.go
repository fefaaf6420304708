package notifications

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

func TestListAndMarkRead(t *testing.T) {
	store := memstore.New()
	repo := store.Notifications()
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Notification{UserID: 1, Type: domain.NotificationBookingApproved, Title: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Notification{UserID: 1, Type: domain.NotificationBookingRejected, Title: "b"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Notification{UserID: 2, Type: domain.NotificationBookingRequested, Title: "c"})
	require.NoError(t, err)

	svc := NewService(repo, logger.NewNop())

	list, err := svc.List(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, "b", list.Notifications[0].Title)
	assert.Equal(t, 2, list.UnreadCount)

	assert.ErrorIs(t, svc.MarkRead(ctx, first.ID, 2), ErrNotificationNotFound)
	require.NoError(t, svc.MarkRead(ctx, first.ID, 1))

	unread, err := svc.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread.Notifications, 1)
	assert.Equal(t, "b", unread.Notifications[0].Title)
}

func TestPurgeRead(t *testing.T) {
	store := memstore.New()
	repo := store.Notifications()
	ctx := context.Background()

	read, err := repo.Create(ctx, &domain.Notification{UserID: 1, Title: "old"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Notification{UserID: 1, Title: "unread"})
	require.NoError(t, err)
	require.NoError(t, repo.MarkRead(ctx, read.ID, 1))

	svc := NewService(repo, logger.NewNop())

	deleted, err := svc.PurgeRead(ctx, time.Now(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = svc.PurgeRead(ctx, time.Now().Add(2*time.Hour), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	left, err := svc.List(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, left.Notifications, 1)
	assert.Equal(t, "unread", left.Notifications[0].Title)

	_, err = svc.PurgeRead(ctx, time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
