package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
)

// ErrInvalidRating rejects ratings outside [1,5].
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// defaultRecentLimit caps RecentEntries when no limit is given.
const defaultRecentLimit = 5

// ProgressPatch is a partial update to a journal entry.
type ProgressPatch struct {
	Date        *time.Time
	Title       *string
	Description *string
	Category    *string
	Rating      *int
}

func (p ProgressPatch) apply(e *domain.ProgressEntry) {
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Category, p.Category)
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
}

// ProgressStore owns the journal-entry collection. Queries that depend on
// the session take the user id explicitly.
type ProgressStore struct {
	base
	backend gateway.ProgressGateway
	entries []domain.ProgressEntry
}

// NewProgressStore builds the store and rehydrates any persisted journal.
func NewProgressStore(ctx context.Context, backend gateway.ProgressGateway, kv persist.KV) *ProgressStore {
	s := &ProgressStore{base: newBase(kv, persist.KeyProgress), backend: backend}
	s.restore(ctx, &s.entries)
	return s
}

// Fetch replaces the journal with the backend's entry list. It requires a
// session: callers pass their user id, and an empty id fails. The fetched
// entries are NOT scoped to that user — scoping happens in the read-time
// getters, matching the behavior this store replaces.
func (s *ProgressStore) Fetch(ctx context.Context, userID string) error {
	gen := s.begin()
	if userID == "" {
		s.resolve(gen, ErrNotAuthenticated, nil)
		return ErrNotAuthenticated
	}

	entries, err := s.backend.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch progress entries: %w", err)
	}
	applied := s.resolve(gen, err, func() { s.entries = entries })
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, entries)
	}
	return nil
}

// Add prepends a new entry with a fresh id. The rating, if set, must be
// within [1,5].
func (s *ProgressStore) Add(ctx context.Context, entry domain.ProgressEntry) (*domain.ProgressEntry, error) {
	gen := s.begin()
	if !entry.RatingValid() {
		s.resolve(gen, ErrInvalidRating, nil)
		return nil, ErrInvalidRating
	}
	entry.ID = uuid.NewString()

	if _, err := s.backend.Create(ctx, &entry); err != nil {
		err = fmt.Errorf("add progress entry: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}

	var snap []domain.ProgressEntry
	if s.resolve(gen, nil, func() {
		s.entries = append([]domain.ProgressEntry{entry}, s.entries...)
		snap = cloneEntries(s.entries)
	}) {
		s.snapshot(ctx, snap)
	}
	return &entry, nil
}

// Update merges a patch into the entry with the given id. A missing id is a
// silent no-op; an out-of-range rating is rejected.
func (s *ProgressStore) Update(ctx context.Context, id string, patch ProgressPatch) error {
	gen := s.begin()
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		s.resolve(gen, ErrInvalidRating, nil)
		return ErrInvalidRating
	}

	s.mu.RLock()
	var updated *domain.ProgressEntry
	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			patch.apply(&e)
			updated = &e
			break
		}
	}
	s.mu.RUnlock()

	if updated != nil {
		if err := s.backend.Update(ctx, updated); err != nil && !errors.Is(err, gateway.ErrNotFound) {
			err = fmt.Errorf("update progress entry: %w", err)
			s.resolve(gen, err, nil)
			return err
		}
	}

	var snap []domain.ProgressEntry
	if s.resolve(gen, nil, func() {
		for i := range s.entries {
			if s.entries[i].ID == id {
				patch.apply(&s.entries[i])
			}
		}
		snap = cloneEntries(s.entries)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Delete removes the entry with the given id. A missing id is a silent no-op.
func (s *ProgressStore) Delete(ctx context.Context, id string) error {
	gen := s.begin()

	if err := s.backend.Delete(ctx, id); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("delete progress entry: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.ProgressEntry
	if s.resolve(gen, nil, func() {
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.entries = kept
		snap = cloneEntries(s.entries)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Entries returns a copy of the whole journal.
func (s *ProgressStore) Entries() []domain.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// EntriesByUser returns the entries owned by the user.
func (s *ProgressStore) EntriesByUser(userID string) []domain.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProgressEntry, 0)
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// RecentEntries returns the user's newest entries, descending by date. A
// non-positive limit defaults to 5. An empty user id yields nothing.
func (s *ProgressStore) RecentEntries(userID string, limit int) []domain.ProgressEntry {
	if userID == "" {
		return []domain.ProgressEntry{}
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	recent := s.EntriesByUser(userID)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func cloneEntries(entries []domain.ProgressEntry) []domain.ProgressEntry {
	out := make([]domain.ProgressEntry, len(entries))
	copy(out, entries)
	return out
}
