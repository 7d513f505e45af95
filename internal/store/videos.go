package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
)

// curatedCategories is the independently maintained category taxonomy. It is
// deliberately not derived from the catalog; see CategoriesInUse for the
// derived view.
var curatedCategories = []string{
	"Basic Steps",
	"Technique",
	"Choreography",
	"Strength Training",
	"Flexibility",
	"Performance",
}

// videosSnapshot is the persisted slice of the videos store.
type videosSnapshot struct {
	Videos      []domain.Video `json:"videos"`
	SavedVideos []string       `json:"savedVideos"`
}

// VideosStore owns the video catalog and the saved-offline id list. Saving
// offline is bookkeeping only; no media is downloaded.
type VideosStore struct {
	base
	backend gateway.VideoGateway

	videos []domain.Video
	saved  []string
}

// NewVideosStore builds the store and rehydrates any persisted catalog.
func NewVideosStore(ctx context.Context, backend gateway.VideoGateway, kv persist.KV) *VideosStore {
	s := &VideosStore{base: newBase(kv, persist.KeyVideos), backend: backend}
	var snap videosSnapshot
	if s.restore(ctx, &snap) {
		s.videos = snap.Videos
		s.saved = snap.SavedVideos
	}
	return s
}

// Fetch replaces the catalog with the backend's video list. The saved-offline
// list is preserved.
func (s *VideosStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	videos, err := s.backend.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch videos: %w", err)
	}
	var snap videosSnapshot
	applied := s.resolve(gen, err, func() {
		s.videos = videos
		snap = videosSnapshot{Videos: videos, SavedVideos: cloneStrings(s.saved)}
	})
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Videos returns a copy of the catalog.
func (s *VideosStore) Videos() []domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Video, len(s.videos))
	copy(out, s.videos)
	return out
}

// VideoByID returns the video, or nil when absent.
func (s *VideosStore) VideoByID(id string) *domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			v := s.videos[i]
			return &v
		}
	}
	return nil
}

// ByCategory returns catalog entries in the category. Pure filter, no store
// mutation.
func (s *VideosStore) ByCategory(category string) []domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Video, 0)
	for _, v := range s.videos {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// Categories returns the curated category taxonomy.
func (s *VideosStore) Categories() []string {
	return cloneStrings(curatedCategories)
}

// CategoriesInUse returns the categories actually present in the catalog,
// sorted, so callers can avoid offering orphan filter options.
func (s *VideosStore) CategoriesInUse() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range s.videos {
		if v.Category != "" && !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Add creates a catalog entry with a fresh id and prepends it locally.
func (s *VideosStore) Add(ctx context.Context, video domain.Video) (*domain.Video, error) {
	gen := s.begin()
	video.ID = uuid.NewString()
	video.CreatedAt = now()

	if _, err := s.backend.Create(ctx, &video); err != nil {
		err = fmt.Errorf("add video: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}

	var snap videosSnapshot
	if s.resolve(gen, nil, func() {
		s.videos = append([]domain.Video{video}, s.videos...)
		snap = s.snapshotLocked()
	}) {
		s.snapshot(ctx, snap)
	}
	return &video, nil
}

// Delete removes a catalog entry and clears its offline flag. Unknown ids are
// a no-op.
func (s *VideosStore) Delete(ctx context.Context, id string) error {
	gen := s.begin()
	err := s.backend.Delete(ctx, id)
	if err != nil && errors.Is(err, gateway.ErrNotFound) {
		err = nil
	}
	var snap videosSnapshot
	applied := s.resolve(gen, err, func() {
		kept := s.videos[:0]
		for _, v := range s.videos {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		s.videos = kept
		savedKept := s.saved[:0]
		for _, sid := range s.saved {
			if sid != id {
				savedKept = append(savedKept, sid)
			}
		}
		s.saved = savedKept
		snap = s.snapshotLocked()
	})
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, snap)
	}
	return nil
}

// SaveOffline flags a video as saved for offline viewing. Idempotent: saving
// twice leaves the id in the list exactly once.
func (s *VideosStore) SaveOffline(ctx context.Context, videoID string) error {
	gen := s.begin()
	var snap videosSnapshot
	if s.resolve(gen, nil, func() {
		for _, id := range s.saved {
			if id == videoID {
				snap = s.snapshotLocked()
				return
			}
		}
		s.saved = append(s.saved, videoID)
		snap = s.snapshotLocked()
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// RemoveSaved clears the offline flag for a video. Idempotent.
func (s *VideosStore) RemoveSaved(ctx context.Context, videoID string) error {
	gen := s.begin()
	var snap videosSnapshot
	if s.resolve(gen, nil, func() {
		kept := s.saved[:0]
		for _, id := range s.saved {
			if id != videoID {
				kept = append(kept, id)
			}
		}
		s.saved = kept
		snap = s.snapshotLocked()
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// SavedVideos returns the ids flagged for offline viewing.
func (s *VideosStore) SavedVideos() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.saved)
}

// IsSaved reports whether the video is flagged for offline viewing.
func (s *VideosStore) IsSaved(videoID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.saved {
		if id == videoID {
			return true
		}
	}
	return false
}

// snapshotLocked builds the persisted slice. Caller holds the lock.
func (s *VideosStore) snapshotLocked() videosSnapshot {
	videos := make([]domain.Video, len(s.videos))
	copy(videos, s.videos)
	return videosSnapshot{Videos: videos, SavedVideos: cloneStrings(s.saved)}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
