package mock

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

// seedProgressEntries returns the canned journal. All four entries belong to
// user "1" regardless of who asks; the store filters at read time. This
// mirrors the legacy client, which never scoped the fetch to the caller.
func seedProgressEntries() []domain.ProgressEntry {
	return []domain.ProgressEntry{
		{
			ID:          "1",
			UserID:      "1",
			Date:        daysFromNow(-7),
			Title:       "Improved Waltz Technique",
			Description: "Made significant progress with my waltz turns today. Coach noticed the improvement.",
			Category:    "Technique",
			Rating:      4,
		},
		{
			ID:          "2",
			UserID:      "1",
			Date:        daysFromNow(-5),
			Title:       "Flexibility Milestone",
			Description: "Finally achieved full splits! Months of stretching has paid off.",
			Category:    "Flexibility",
			Rating:      5,
		},
		{
			ID:          "3",
			UserID:      "1",
			Date:        daysFromNow(-3),
			Title:       "Tango Choreography",
			Description: "Learned the first half of the new tango choreography. Need more practice on the timing.",
			Category:    "Choreography",
			Rating:      3,
		},
		{
			ID:          "4",
			UserID:      "1",
			Date:        daysFromNow(-1),
			Title:       "Stamina Training",
			Description: "Completed a full 2-hour practice session without getting winded. Cardio training is helping.",
			Category:    "Fitness",
			Rating:      4,
		},
	}
}

// ProgressGateway serves the canned journal entries.
type ProgressGateway struct {
	latency Latency
}

func NewProgressGateway(latency Latency) *ProgressGateway {
	return &ProgressGateway{latency: latency}
}

func (g *ProgressGateway) List(ctx context.Context) ([]domain.ProgressEntry, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedProgressEntries(), nil
}

func (g *ProgressGateway) Create(ctx context.Context, entry *domain.ProgressEntry) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (g *ProgressGateway) Update(ctx context.Context, entry *domain.ProgressEntry) error {
	return g.latency.sleep(ctx)
}

func (g *ProgressGateway) Delete(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}
