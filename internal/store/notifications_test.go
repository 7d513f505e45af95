package store

import (
	"context"
	"testing"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationsStore(t *testing.T, kv persist.KV) *NotificationsStore {
	t.Helper()
	return NewNotificationsStore(context.Background(), mock.NewNotificationGateway(noDelay), kv)
}

func TestFetchNotifications(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.Notifications(), 5)
	assert.Equal(t, 4, s.UnreadCount()) // seed has one pre-read item
}

func TestMarkReadIsOneWay(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.MarkRead(ctx, "1"))
	assert.Equal(t, 3, s.UnreadCount())

	// Marking again changes nothing.
	require.NoError(t, s.MarkRead(ctx, "1"))
	assert.Equal(t, 3, s.UnreadCount())
}

func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.MarkRead(ctx, "missing"))
	assert.Equal(t, 4, s.UnreadCount())
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.MarkAllRead(ctx))
	assert.Zero(t, s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.IsRead)
	}
}

func TestAddNotificationPrependsUnread(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	created, err := s.Add(ctx, "Schedule Change", "Saturday practice moved to 10:00", domain.NotifySystem, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsRead)

	feed := s.Notifications()
	require.Len(t, feed, 6)
	assert.Equal(t, created.ID, feed[0].ID)
	assert.Equal(t, 5, s.UnreadCount())
}

func TestDeleteNotification(t *testing.T) {
	ctx := context.Background()
	s := newNotificationsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Delete(ctx, "4"))
	assert.Len(t, s.Notifications(), 4)

	require.NoError(t, s.Delete(ctx, "4"))
	assert.Len(t, s.Notifications(), 4)
}

func TestNotificationsSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newNotificationsStore(t, kv)
	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.MarkRead(ctx, "3"))

	restored := newNotificationsStore(t, kv)
	assert.Len(t, restored.Notifications(), 5)
	assert.Equal(t, 3, restored.UnreadCount())
}
