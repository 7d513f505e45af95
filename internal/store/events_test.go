package store

import (
	"context"
	"testing"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventIDs(events []domain.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestFetchEvents(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.Events(), 5)
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestUpcomingSortedAscendingByStartDate(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Seed start offsets in days: 1→15, 2→5, 3→2, 4→45, 5→30.
	upcoming := s.Upcoming(0)
	assert.Equal(t, []string{"3", "2", "1", "5", "4"}, eventIDs(upcoming))
}

func TestUpcomingLimitTruncates(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	upcoming := s.Upcoming(2)
	assert.Equal(t, []string{"3", "2"}, eventIDs(upcoming))
}

func TestUpcomingExcludesEndedEvents(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	past := time.Now().Add(-48 * time.Hour)
	s.mu.Lock()
	s.events = append(s.events, domain.Event{ID: "past", StartDate: past, EndDate: past.Add(time.Hour)})
	s.mu.Unlock()

	assert.NotContains(t, eventIDs(s.Upcoming(0)), "past")
}

func TestToggleReminderTouchesOnlyTargetEvent(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.ToggleReminder(ctx, "2", true))

	for _, e := range s.Events() {
		switch e.ID {
		case "1", "2", "3", "5":
			assert.True(t, e.ReminderEnabled, "event %s", e.ID)
		case "4":
			assert.False(t, e.ReminderEnabled, "event %s", e.ID)
		}
	}

	require.NoError(t, s.ToggleReminder(ctx, "2", false))
	e := s.EventByID("2")
	require.NotNil(t, e)
	assert.False(t, e.ReminderEnabled)
}

func TestAddEventAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	created, err := s.Add(ctx, domain.Event{
		Title:     "Spring Ball",
		StartDate: time.Now().Add(72 * time.Hour),
		EndDate:   time.Now().Add(80 * time.Hour),
		Type:      domain.EventOther,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.Events(), 6)
	require.NotNil(t, s.EventByID(created.ID))
}

func TestUpdateUnknownEventIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	title := "Renamed"
	require.NoError(t, s.Update(ctx, "does-not-exist", EventPatch{Title: &title}))
	assert.Len(t, s.Events(), 5)
	assert.NoError(t, s.Err())
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Delete(ctx, "3"))
	assert.Len(t, s.Events(), 4)
	assert.Nil(t, s.EventByID("3"))

	// Deleting again is a silent no-op.
	require.NoError(t, s.Delete(ctx, "3"))
	assert.Len(t, s.Events(), 4)
}

func TestByCategory(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	latin := s.ByCategory("Latin")
	assert.ElementsMatch(t, []string{"1", "2", "4"}, eventIDs(latin))
	assert.Empty(t, s.ByCategory("Hip Hop"))
}

func TestByDateRangeIncludesOverlaps(t *testing.T) {
	ctx := context.Background()
	s := newEventsStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Window covering days 1..6 catches the meeting (day 2) and the
	// workshop (days 5-6), including its partial overlap.
	start := time.Now().Add(24 * time.Hour)
	end := time.Now().Add(6 * 24 * time.Hour)
	assert.ElementsMatch(t, []string{"2", "3"}, eventIDs(s.ByDateRange(start, end)))
}

func TestEventsSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newEventsStore(t, kv)
	require.NoError(t, s.Fetch(ctx))
	want := s.Events()

	restored := newEventsStore(t, kv)
	got := restored.Events()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Categories, got[i].Categories)
		assert.True(t, want[i].StartDate.Equal(got[i].StartDate))
		assert.True(t, want[i].EndDate.Equal(got[i].EndDate))
	}
}
