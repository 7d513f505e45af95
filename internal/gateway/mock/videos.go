package mock

import (
	"context"
	"time"

	"rapidbudapest/club-app/internal/domain"
)

func seedVideos() []domain.Video {
	created := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []domain.Video{
		{
			ID:           "1",
			Title:        "Basic Waltz Steps",
			Description:  "Learn the fundamental steps of Waltz for beginners",
			ThumbnailURL: "https://images.unsplash.com/photo-1508700115892-45ecd05ae2ad?w=800",
			VideoURL:     "https://example.com/videos/basic-waltz.mp4",
			Duration:     360,
			Category:     "Basic Steps",
			Tags:         []string{"waltz", "beginner", "ballroom"},
			CreatedAt:    created("2023-01-15T10:00:00Z"),
			CreatedBy:    "Coach Smith",
		},
		{
			ID:           "2",
			Title:        "Advanced Tango Technique",
			Description:  "Improve your Tango with these advanced techniques",
			ThumbnailURL: "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=800",
			VideoURL:     "https://example.com/videos/advanced-tango.mp4",
			Duration:     720,
			Category:     "Technique",
			Tags:         []string{"tango", "advanced", "ballroom"},
			CreatedAt:    created("2023-02-20T14:30:00Z"),
			CreatedBy:    "Coach Maria",
		},
		{
			ID:           "3",
			Title:        "Salsa Choreography",
			Description:  "Learn this exciting Salsa choreography for your next performance",
			ThumbnailURL: "https://images.unsplash.com/photo-1504609773096-104ff2c73ba4?w=800",
			VideoURL:     "https://example.com/videos/salsa-choreo.mp4",
			Duration:     540,
			Category:     "Choreography",
			Tags:         []string{"salsa", "latin", "choreography"},
			CreatedAt:    created("2023-03-10T09:15:00Z"),
			CreatedBy:    "Coach Rodriguez",
		},
		{
			ID:           "4",
			Title:        "Core Strength for Dancers",
			Description:  "Essential core exercises to improve your dance performance",
			ThumbnailURL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=800",
			VideoURL:     "https://example.com/videos/core-strength.mp4",
			Duration:     480,
			Category:     "Strength Training",
			Tags:         []string{"fitness", "core", "strength"},
			CreatedAt:    created("2023-04-05T16:45:00Z"),
			CreatedBy:    "Coach Taylor",
		},
		{
			ID:           "5",
			Title:        "Flexibility Routine for Dancers",
			Description:  "Improve your flexibility with this daily routine",
			ThumbnailURL: "https://images.unsplash.com/photo-1518459031867-a89b944bffe4?w=800",
			VideoURL:     "https://example.com/videos/flexibility.mp4",
			Duration:     600,
			Category:     "Flexibility",
			Tags:         []string{"stretching", "flexibility", "routine"},
			CreatedAt:    created("2023-05-12T11:20:00Z"),
			CreatedBy:    "Coach Lisa",
		},
		{
			ID:           "6",
			Title:        "Stage Presence Workshop",
			Description:  "Learn how to command the stage during your performances",
			ThumbnailURL: "https://images.unsplash.com/photo-1545128485-c400e7702796?w=800",
			VideoURL:     "https://example.com/videos/stage-presence.mp4",
			Duration:     900,
			Category:     "Performance",
			Tags:         []string{"performance", "presence", "workshop"},
			CreatedAt:    created("2023-06-18T13:10:00Z"),
			CreatedBy:    "Coach Williams",
		},
	}
}

// VideoGateway serves the canned video catalog.
type VideoGateway struct {
	latency Latency
}

func NewVideoGateway(latency Latency) *VideoGateway {
	return &VideoGateway{latency: latency}
}

func (g *VideoGateway) List(ctx context.Context) ([]domain.Video, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedVideos(), nil
}

func (g *VideoGateway) Create(ctx context.Context, video *domain.Video) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	return video.ID, nil
}

func (g *VideoGateway) Delete(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}
