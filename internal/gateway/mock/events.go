package mock

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

// seedEvents regenerates the canned calendar. The same five events come back
// on every call, with dates computed relative to "now" at call time.
func seedEvents() []domain.Event {
	return []domain.Event{
		{
			ID:              "1",
			Title:           "WDSF International Open Latin",
			Description:     "International Latin dance competition with participants from over 20 countries.",
			StartDate:       daysFromNow(15),
			EndDate:         daysFromNow(16),
			Location:        "Budapest Sports Arena, Budapest",
			Type:            domain.EventCompetition,
			Categories:      []string{"Latin", "Adult"},
			ReminderEnabled: true,
			CreatedBy:       "1",
		},
		{
			ID:          "2",
			Title:       "Weekend Workshop: Advanced Techniques",
			Description: "Intensive weekend workshop focusing on advanced dance techniques and choreography.",
			StartDate:   daysFromNow(5),
			EndDate:     daysFromNow(6),
			Location:    "RAPID Studio, Váci Street, Budapest",
			Type:        domain.EventWorkshop,
			Categories:  []string{"Latin", "Ballroom", "All Levels"},
			CreatedBy:   "2",
		},
		{
			ID:              "3",
			Title:           "Club Meeting: Season Planning",
			Description:     "Annual club meeting to discuss the upcoming season, competitions, and events.",
			StartDate:       daysFromNow(2),
			EndDate:         daysFromNow(2),
			Location:        "RAPID Office, Budapest",
			Type:            domain.EventMeeting,
			ReminderEnabled: true,
			CreatedBy:       "1",
		},
		{
			ID:          "4",
			Title:       "Hungarian National Championship",
			Description: "The annual Hungarian National Dance Sport Championship for all age categories.",
			StartDate:   daysFromNow(45),
			EndDate:     daysFromNow(47),
			Location:    "National Dance Arena, Budapest",
			Type:        domain.EventCompetition,
			Categories:  []string{"Standard", "Latin", "All Ages"},
			CreatedBy:   "1",
		},
		{
			ID:              "5",
			Title:           "Beginner Showcase",
			Description:     "Performance opportunity for beginner dancers to showcase their progress.",
			StartDate:       daysFromNow(30),
			EndDate:         daysFromNow(30),
			Location:        "RAPID Studio, Váci Street, Budapest",
			Type:            domain.EventOther,
			Categories:      []string{"Beginner"},
			ReminderEnabled: true,
			CreatedBy:       "2",
		},
	}
}

// EventGateway serves the canned calendar. Mutations are acknowledged after
// the latency window; the store owns the authoritative collection.
type EventGateway struct {
	latency Latency
}

func NewEventGateway(latency Latency) *EventGateway {
	return &EventGateway{latency: latency}
}

func (g *EventGateway) List(ctx context.Context) ([]domain.Event, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedEvents(), nil
}

func (g *EventGateway) Create(ctx context.Context, event *domain.Event) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	return event.ID, nil
}

func (g *EventGateway) Update(ctx context.Context, event *domain.Event) error {
	return g.latency.sleep(ctx)
}

func (g *EventGateway) Delete(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}
