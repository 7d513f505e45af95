package mock

import (
	"context"
	"testing"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatencySleepHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slow := Latency{Min: 10 * time.Second, Max: 10 * time.Second}
	start := time.Now()
	err := slow.sleep(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestZeroLatencyDoesNotBlock(t *testing.T) {
	start := time.Now()
	require.NoError(t, Latency{}.sleep(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestStaticDirectoryRegeneratesSeedOnList(t *testing.T) {
	ctx := context.Background()
	g := NewUserGateway(Latency{}, gateway.DirectoryStatic)

	require.NoError(t, g.SetApproval(ctx, "8", true))

	users, err := g.List(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == "8" {
			assert.True(t, u.IsPending(), "approval must not survive a static listing")
			return
		}
	}
	t.Fatal("user 8 not found")
}

func TestMutableDirectoryKeepsMutations(t *testing.T) {
	ctx := context.Background()
	g := NewUserGateway(Latency{}, gateway.DirectoryMutable)

	require.NoError(t, g.SetRole(ctx, "7", domain.RoleCoach))

	u, err := g.GetByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCoach, u.Role)
}

func TestUserGatewayUnknownEmail(t *testing.T) {
	ctx := context.Background()
	g := NewUserGateway(Latency{}, gateway.DirectoryStatic)

	_, err := g.GetByEmail(ctx, "ghost@rapid.hu")
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestUserGatewayCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	g := NewUserGateway(Latency{}, gateway.DirectoryStatic)

	_, err := g.Create(ctx, &domain.User{ID: "99", Email: "admin@rapid.hu"})
	require.ErrorIs(t, err, gateway.ErrConflict)
}

func TestSeedDatesAreRelativeToNow(t *testing.T) {
	ctx := context.Background()
	g := NewEventGateway(Latency{})

	events, err := g.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for _, e := range events {
		assert.True(t, e.EndDate.After(time.Now()), "seed event %s must lie ahead", e.ID)
	}
}
