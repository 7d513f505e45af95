package mock

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

func seedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        "1",
			Title:     "New Training Video",
			Message:   "A new waltz technique video has been added to the library",
			Type:      domain.NotifyVideo,
			RelatedID: "1",
			CreatedAt: hoursAgo(48),
		},
		{
			ID:        "2",
			Title:     "Upcoming Competition",
			Message:   "Don't forget about the Regional Dance Competition next week",
			Type:      domain.NotifyEvent,
			RelatedID: "3",
			CreatedAt: hoursAgo(24),
			IsRead:    true,
		},
		{
			ID:        "3",
			Title:     "New Training Plan",
			Message:   "Coach Smith has assigned you a new training plan",
			Type:      domain.NotifyTraining,
			RelatedID: "1",
			CreatedAt: hoursAgo(12),
		},
		{
			ID:        "4",
			Title:     "Venue Change",
			Message:   "Tomorrow's practice has been moved to Studio B due to renovations",
			Type:      domain.NotifySystem,
			CreatedAt: hoursAgo(6),
		},
		{
			ID:        "5",
			Title:     "Workshop Registration Open",
			Message:   "Registration is now open for the Latin Dance Workshop",
			Type:      domain.NotifyEvent,
			RelatedID: "2",
			CreatedAt: hoursAgo(3),
		},
	}
}

// NotificationGateway serves the canned notification feed.
type NotificationGateway struct {
	latency Latency
}

func NewNotificationGateway(latency Latency) *NotificationGateway {
	return &NotificationGateway{latency: latency}
}

func (g *NotificationGateway) List(ctx context.Context) ([]domain.Notification, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedNotifications(), nil
}

func (g *NotificationGateway) Create(ctx context.Context, n *domain.Notification) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	return n.ID, nil
}

func (g *NotificationGateway) MarkRead(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}

func (g *NotificationGateway) MarkAllRead(ctx context.Context) error {
	return g.latency.sleep(ctx)
}

func (g *NotificationGateway) Delete(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}
