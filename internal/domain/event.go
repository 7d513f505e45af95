package domain

import "time"

// EventType classifies calendar events.
type EventType string

const (
	EventCompetition EventType = "competition"
	EventWorkshop    EventType = "workshop"
	EventMeeting     EventType = "meeting"
	EventOther       EventType = "other"
)

// Event represents a calendar event on the club calendar.
type Event struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description"`
	StartDate       time.Time `bson:"startDate" json:"startDate"`
	EndDate         time.Time `bson:"endDate" json:"endDate"` // Assumed >= StartDate, not enforced
	Location        string    `bson:"location,omitempty" json:"location"`
	Type            EventType `bson:"type" json:"type"`
	Categories      []string  `bson:"categories,omitempty" json:"categories,omitempty"`
	ReminderEnabled bool      `bson:"reminderEnabled" json:"reminderEnabled"`
	CreatedBy       string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"` // User.ID of the creator
}

// Upcoming reports whether the event has not yet ended at the given instant.
func (e *Event) Upcoming(now time.Time) bool {
	return !e.EndDate.Before(now)
}

// HasCategory reports whether the event is tagged with the category.
func (e *Event) HasCategory(category string) bool {
	for _, c := range e.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Overlaps reports whether the event overlaps the [start, end] interval.
func (e *Event) Overlaps(start, end time.Time) bool {
	return !e.StartDate.After(end) && !e.EndDate.Before(start)
}
