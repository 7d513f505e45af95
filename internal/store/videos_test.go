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

func newVideosStore(t *testing.T, kv persist.KV) *VideosStore {
	t.Helper()
	return NewVideosStore(context.Background(), mock.NewVideoGateway(noDelay), kv)
}

func TestFetchVideos(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.Videos(), 6)
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestSaveOfflineIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.SaveOffline(ctx, "2"))
	require.NoError(t, s.SaveOffline(ctx, "2"))

	assert.Equal(t, []string{"2"}, s.SavedVideos())
	assert.True(t, s.IsSaved("2"))
}

func TestRemoveSavedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.SaveOffline(ctx, "1"))
	require.NoError(t, s.RemoveSaved(ctx, "1"))
	require.NoError(t, s.RemoveSaved(ctx, "1"))

	assert.Empty(t, s.SavedVideos())
	assert.False(t, s.IsSaved("1"))
}

func TestFetchPreservesSavedList(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.SaveOffline(ctx, "3"))

	require.NoError(t, s.Fetch(ctx))
	assert.Equal(t, []string{"3"}, s.SavedVideos())
}

func TestCuratedCategoriesAreIndependentOfCatalog(t *testing.T) {
	s := newVideosStore(t, nil)

	// The taxonomy is available before any fetch and does not shrink with
	// the catalog.
	assert.Equal(t, []string{
		"Basic Steps",
		"Technique",
		"Choreography",
		"Strength Training",
		"Flexibility",
		"Performance",
	}, s.Categories())
	assert.Empty(t, s.CategoriesInUse())
}

func TestCategoriesInUseDerivedFromCatalog(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	inUse := s.CategoriesInUse()
	assert.ElementsMatch(t, []string{
		"Basic Steps", "Technique", "Choreography",
		"Strength Training", "Flexibility", "Performance",
	}, inUse)
	assert.IsNonDecreasing(t, inUse)
}

func TestByCategoryFiltersCatalog(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	technique := s.ByCategory("Technique")
	require.Len(t, technique, 1)
	assert.Equal(t, "2", technique[0].ID)
}

func TestAddVideoPrepends(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	created, err := s.Add(ctx, domain.Video{Title: "New Clip", Category: "Technique"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	videos := s.Videos()
	require.Len(t, videos, 7)
	assert.Equal(t, created.ID, videos[0].ID)
	assert.NotEqual(t, created.ID, videos[1].ID)
}

func TestAddVideoAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	first, err := s.Add(ctx, domain.Video{Title: "Clip A", Category: "Technique"})
	require.NoError(t, err)
	second, err := s.Add(ctx, domain.Video{Title: "Clip B", Category: "Technique"})
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	require.NotNil(t, s.VideoByID(second.ID))
	assert.Equal(t, "Clip B", s.VideoByID(second.ID).Title)
}

func TestDeleteVideoClearsSavedFlag(t *testing.T) {
	ctx := context.Background()
	s := newVideosStore(t, nil)
	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.SaveOffline(ctx, "4"))

	require.NoError(t, s.Delete(ctx, "4"))
	assert.Nil(t, s.VideoByID("4"))
	assert.False(t, s.IsSaved("4"))
}

func TestVideosSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newVideosStore(t, kv)
	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.SaveOffline(ctx, "5"))

	restored := newVideosStore(t, kv)
	assert.Len(t, restored.Videos(), 6)
	assert.Equal(t, []string{"5"}, restored.SavedVideos())
}
