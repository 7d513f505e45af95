package gateway

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

// Error constants for the gateway layer
var (
	ErrNotFound     = GatewayError("not found")
	ErrConflict     = GatewayError("already exists")
	ErrUpdateFailed = GatewayError("update failed")
	ErrDeleteFailed = GatewayError("delete failed")
)

// GatewayError helps distinguish gateway errors
type GatewayError string

func (e GatewayError) Error() string {
	return string(e)
}

// DirectoryMode selects how the user gateway treats admin mutations.
// DirectoryStatic preserves the legacy fire-and-forget behavior: approve,
// reject and role changes succeed but the directory is regenerated on every
// List, so they do not survive a refetch. DirectoryMutable applies them.
type DirectoryMode string

const (
	DirectoryStatic  DirectoryMode = "static"
	DirectoryMutable DirectoryMode = "mutable"
)

// UserGateway is the backend boundary for the member directory.
type UserGateway interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	SetApproval(ctx context.Context, id string, approved bool) error
	SetRole(ctx context.Context, id string, role domain.Role) error
}

// EventGateway is the backend boundary for calendar events.
type EventGateway interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (string, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// TrainingGateway is the backend boundary for training plans.
type TrainingGateway interface {
	List(ctx context.Context) ([]domain.TrainingPlan, error)
	Create(ctx context.Context, plan *domain.TrainingPlan) (string, error)
	Update(ctx context.Context, plan *domain.TrainingPlan) error
	Delete(ctx context.Context, id string) error
}

// VideoGateway is the backend boundary for the video catalog.
type VideoGateway interface {
	List(ctx context.Context) ([]domain.Video, error)
	Create(ctx context.Context, video *domain.Video) (string, error)
	Delete(ctx context.Context, id string) error
}

// ProgressGateway is the backend boundary for journal entries.
// List is intentionally unfiltered; user scoping happens at read time in the
// store, mirroring how the legacy client behaved.
type ProgressGateway interface {
	List(ctx context.Context) ([]domain.ProgressEntry, error)
	Create(ctx context.Context, entry *domain.ProgressEntry) (string, error)
	Update(ctx context.Context, entry *domain.ProgressEntry) error
	Delete(ctx context.Context, id string) error
}

// NotificationGateway is the backend boundary for the notification feed.
type NotificationGateway interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) (string, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// ClubGateway is the backend boundary for the singleton club profile.
// Save writes the whole profile; sub-collection edits are merged by the
// store before saving.
type ClubGateway interface {
	Fetch(ctx context.Context) (*domain.ClubInfo, error)
	Save(ctx context.Context, info *domain.ClubInfo) error
}
