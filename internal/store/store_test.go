package store

import (
	"context"
	"testing"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelay disables the simulated latency so tests run synchronously.
var noDelay = mock.Latency{}

func newEventsStore(t *testing.T, kv persist.KV) *EventsStore {
	t.Helper()
	return NewEventsStore(context.Background(), mock.NewEventGateway(noDelay), kv)
}

// blockingEventGateway hands control of each List call to the test, so
// overlapping fetches can be resolved in a chosen order.
type blockingEventGateway struct {
	lists chan chan []domain.Event
}

func (g *blockingEventGateway) List(ctx context.Context) ([]domain.Event, error) {
	reply := make(chan []domain.Event)
	g.lists <- reply
	return <-reply, nil
}

func (g *blockingEventGateway) Create(ctx context.Context, e *domain.Event) (string, error) {
	return e.ID, nil
}

func (g *blockingEventGateway) Update(ctx context.Context, e *domain.Event) error { return nil }
func (g *blockingEventGateway) Delete(ctx context.Context, id string) error       { return nil }

func TestLatestFetchWins(t *testing.T) {
	ctx := context.Background()
	g := &blockingEventGateway{lists: make(chan chan []domain.Event)}
	s := NewEventsStore(ctx, g, nil)

	first := make(chan error, 1)
	go func() { first <- s.Fetch(ctx) }()
	firstReply := <-g.lists // first fetch is now in flight

	second := make(chan error, 1)
	go func() { second <- s.Fetch(ctx) }()
	secondReply := <-g.lists

	// The newer fetch lands first; the older one resolves after it and must
	// be discarded.
	secondReply <- []domain.Event{{ID: "fresh"}}
	require.NoError(t, <-second)
	firstReply <- []domain.Event{{ID: "stale"}}
	require.NoError(t, <-first)

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "fresh", events[0].ID)
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestSubscribeSignalsOnChange(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)

	ch, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Fetch(ctx))

	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after fetch")
	}
}

func TestSubscribeCancelStopsSignals(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)

	ch, cancel := s.Subscribe()
	cancel()

	require.NoError(t, s.Fetch(ctx))

	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not receive signals")
	default:
	}
}

func TestLoadingAndErrorResetAcrossActions(t *testing.T) {
	ctx := context.Background()
	users := mock.NewUserGateway(noDelay, gateway.DirectoryStatic)
	s := NewAuthStore(ctx, users, nil)

	err := s.Login(ctx, "admin@rapid.hu", "wrong")
	require.Error(t, err)
	assert.Equal(t, err, s.Err())
	assert.False(t, s.Loading())

	// The next action clears the previous error.
	require.NoError(t, s.Login(ctx, "admin@rapid.hu", "password"))
	assert.NoError(t, s.Err())
	assert.False(t, s.Loading())
}
