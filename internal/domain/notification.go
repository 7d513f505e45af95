package domain

import "time"

// NotificationType classifies notifications by what they announce.
type NotificationType string

const (
	NotifyEvent    NotificationType = "event"
	NotifyTraining NotificationType = "training"
	NotifyVideo    NotificationType = "video"
	NotifySystem   NotificationType = "system"
)

// Notification is one item in the in-app notification feed.
// IsRead only ever transitions false -> true.
type Notification struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Type      NotificationType `bson:"type" json:"type"`
	RelatedID string           `bson:"relatedId,omitempty" json:"relatedId,omitempty"` // Event/TrainingPlan/Video ID
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	IsRead    bool             `bson:"isRead" json:"isRead"`
}
