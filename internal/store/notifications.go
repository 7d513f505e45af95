package store

import (
	"context"
	"errors"
	"fmt"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
)

// NotificationsStore owns the notification feed. Read state is monotonic:
// a notification never reverts to unread.
type NotificationsStore struct {
	base
	backend       gateway.NotificationGateway
	notifications []domain.Notification
}

// NewNotificationsStore builds the store and rehydrates any persisted feed.
func NewNotificationsStore(ctx context.Context, backend gateway.NotificationGateway, kv persist.KV) *NotificationsStore {
	s := &NotificationsStore{base: newBase(kv, persist.KeyNotifications), backend: backend}
	s.restore(ctx, &s.notifications)
	return s
}

// Fetch replaces the feed with the backend's notification list.
func (s *NotificationsStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	notifications, err := s.backend.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch notifications: %w", err)
	}
	applied := s.resolve(gen, err, func() { s.notifications = notifications })
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, notifications)
	}
	return nil
}

// Add prepends a new notification with a fresh id, the current timestamp and
// unread state.
func (s *NotificationsStore) Add(ctx context.Context, title, message string, typ domain.NotificationType, relatedID string) (*domain.Notification, error) {
	gen := s.begin()
	n := domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
		CreatedAt: now(),
	}

	if _, err := s.backend.Create(ctx, &n); err != nil {
		err = fmt.Errorf("add notification: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}

	var snap []domain.Notification
	if s.resolve(gen, nil, func() {
		s.notifications = append([]domain.Notification{n}, s.notifications...)
		snap = cloneNotifications(s.notifications)
	}) {
		s.snapshot(ctx, snap)
	}
	return &n, nil
}

// MarkRead transitions one notification to read. One-way.
func (s *NotificationsStore) MarkRead(ctx context.Context, id string) error {
	gen := s.begin()

	if err := s.backend.MarkRead(ctx, id); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("mark notification read: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.Notification
	if s.resolve(gen, nil, func() {
		for i := range s.notifications {
			if s.notifications[i].ID == id {
				s.notifications[i].IsRead = true
			}
		}
		snap = cloneNotifications(s.notifications)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// MarkAllRead transitions every notification to read.
func (s *NotificationsStore) MarkAllRead(ctx context.Context) error {
	gen := s.begin()

	if err := s.backend.MarkAllRead(ctx); err != nil {
		err = fmt.Errorf("mark all notifications read: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.Notification
	if s.resolve(gen, nil, func() {
		for i := range s.notifications {
			s.notifications[i].IsRead = true
		}
		snap = cloneNotifications(s.notifications)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Delete removes the notification with the given id. Missing ids no-op.
func (s *NotificationsStore) Delete(ctx context.Context, id string) error {
	gen := s.begin()

	if err := s.backend.Delete(ctx, id); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("delete notification: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.Notification
	if s.resolve(gen, nil, func() {
		kept := s.notifications[:0]
		for _, n := range s.notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		s.notifications = kept
		snap = cloneNotifications(s.notifications)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Notifications returns a copy of the feed.
func (s *NotificationsStore) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotifications(s.notifications)
}

// UnreadCount counts notifications still unread. Pure read; this feeds the
// navigation badge.
func (s *NotificationsStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func cloneNotifications(in []domain.Notification) []domain.Notification {
	out := make([]domain.Notification, len(in))
	copy(out, in)
	return out
}
