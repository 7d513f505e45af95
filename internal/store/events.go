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

// EventPatch is a partial update to an event. Nil fields are left untouched.
type EventPatch struct {
	Title           *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	Type            *domain.EventType
	Categories      *[]string
	ReminderEnabled *bool
	CreatedBy       *string
}

func (p EventPatch) apply(e *domain.Event) {
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Location, p.Location)
	setString(&e.CreatedBy, p.CreatedBy)
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Categories != nil {
		e.Categories = *p.Categories
	}
	if p.ReminderEnabled != nil {
		e.ReminderEnabled = *p.ReminderEnabled
	}
}

// EventsStore owns the calendar event collection.
type EventsStore struct {
	base
	backend gateway.EventGateway
	events  []domain.Event
}

// NewEventsStore builds the store and rehydrates any persisted calendar.
func NewEventsStore(ctx context.Context, backend gateway.EventGateway, kv persist.KV) *EventsStore {
	s := &EventsStore{base: newBase(kv, persist.KeyEvents), backend: backend}
	s.restore(ctx, &s.events)
	return s
}

// Fetch replaces the collection with the backend's event list.
func (s *EventsStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	events, err := s.backend.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch events: %w", err)
	}
	applied := s.resolve(gen, err, func() { s.events = events })
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, events)
	}
	return nil
}

// Add creates a new event with a fresh id and returns it. Unlike most
// mutations the error is surfaced to the caller so the UI can branch on it.
func (s *EventsStore) Add(ctx context.Context, event domain.Event) (*domain.Event, error) {
	gen := s.begin()
	event.ID = uuid.NewString()

	if _, err := s.backend.Create(ctx, &event); err != nil {
		err = fmt.Errorf("add event: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}

	var snap []domain.Event
	if s.resolve(gen, nil, func() {
		s.events = append(s.events, event)
		snap = cloneEvents(s.events)
	}) {
		s.snapshot(ctx, snap)
	}
	return &event, nil
}

// Update merges a patch into the event with the given id. A missing id is a
// silent no-op.
func (s *EventsStore) Update(ctx context.Context, id string, patch EventPatch) error {
	gen := s.begin()

	if err := s.remoteUpdate(ctx, id, patch); err != nil {
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.Event
	if s.resolve(gen, nil, func() {
		for i := range s.events {
			if s.events[i].ID == id {
				patch.apply(&s.events[i])
			}
		}
		snap = cloneEvents(s.events)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

func (s *EventsStore) remoteUpdate(ctx context.Context, id string, patch EventPatch) error {
	s.mu.RLock()
	var updated *domain.Event
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			patch.apply(&e)
			updated = &e
			break
		}
	}
	s.mu.RUnlock()
	if updated == nil {
		return nil
	}
	if err := s.backend.Update(ctx, updated); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes the event with the given id. A missing id is a silent no-op.
func (s *EventsStore) Delete(ctx context.Context, id string) error {
	gen := s.begin()

	if err := s.backend.Delete(ctx, id); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("delete event: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.Event
	if s.resolve(gen, nil, func() {
		kept := s.events[:0]
		for _, e := range s.events {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.events = kept
		snap = cloneEvents(s.events)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// ToggleReminder sets reminderEnabled on a single event.
func (s *EventsStore) ToggleReminder(ctx context.Context, id string, enabled bool) error {
	return s.Update(ctx, id, EventPatch{ReminderEnabled: &enabled})
}

// Events returns a copy of the whole collection.
func (s *EventsStore) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// EventByID returns the event, or nil when absent. Pure read.
func (s *EventsStore) EventByID(id string) *domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e
		}
	}
	return nil
}

// Upcoming returns events that have not yet ended, sorted ascending by start
// date. A positive limit truncates the result.
func (s *EventsStore) Upcoming(limit int) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nowT := now()
	upcoming := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.Upcoming(nowT) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ByCategory returns events tagged with the category. Pure filter.
func (s *EventsStore) ByCategory(category string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.HasCategory(category) {
			out = append(out, e)
		}
	}
	return out
}

// ByDateRange returns events overlapping the [start, end] interval.
func (s *EventsStore) ByDateRange(start, end time.Time) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.Overlaps(start, end) {
			out = append(out, e)
		}
	}
	return out
}

func cloneEvents(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	return out
}
