package mock

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

// exercisePool is the fixed pool of ten exercises the canned plans draw from.
func exercisePool() []domain.Exercise {
	return []domain.Exercise{
		{ID: "1", Name: "Warm-up Routine", Description: "Full body warm-up to prepare for dance training", Duration: 15},
		{ID: "2", Name: "Basic Step Drills", Description: "Practice basic steps with proper technique", Duration: 20, VideoID: "1"},
		{ID: "3", Name: "Rumba Technique", Description: "Focus on hip action and timing in Rumba", Duration: 30, VideoID: "2"},
		{ID: "4", Name: "Choreography Practice", Description: "Work on competition routine", Duration: 45},
		{ID: "5", Name: "Cool Down & Stretching", Description: "Gentle stretching to improve flexibility", Duration: 15},
		{ID: "6", Name: "Waltz Technique", Description: "Focus on rise and fall in Waltz", Duration: 30, VideoID: "3"},
		{ID: "7", Name: "Jive Kicks & Flicks", Description: "Technique practice for Jive kicks and flicks", Duration: 25, VideoID: "4"},
		{ID: "8", Name: "Posture & Frame", Description: "Exercises to improve dance posture and frame", Duration: 20},
		{ID: "9", Name: "Strength Training", Description: "Dance-specific strength exercises", Duration: 30},
		{ID: "10", Name: "Balance Exercises", Description: "Improve balance for better dance control", Duration: 15},
	}
}

func seedTrainingPlans() []domain.TrainingPlan {
	ex := exercisePool()
	return []domain.TrainingPlan{
		{
			ID:            "1",
			Title:         "Latin Technique Focus",
			Description:   "Intensive training session focusing on Latin dance techniques",
			ScheduledDate: daysFromNow(0),
			Exercises:     []domain.Exercise{ex[0], ex[1], ex[2], ex[4]},
			AssignedTo:    []string{"3", "4", "5", "7"},
			CreatedBy:     "2",
		},
		{
			ID:            "2",
			Title:         "Competition Preparation",
			Description:   "Final preparation for the upcoming competition",
			ScheduledDate: daysFromNow(1),
			Exercises:     []domain.Exercise{ex[0], ex[3], ex[4]},
			AssignedTo:    []string{"3", "4", "5"},
			CreatedBy:     "2",
		},
		{
			ID:            "3",
			Title:         "Standard Dance Basics",
			Description:   "Focus on fundamental techniques for standard dances",
			ScheduledDate: daysFromNow(2),
			Exercises:     []domain.Exercise{ex[0], ex[5], ex[7], ex[4]},
			AssignedTo:    []string{"3", "4", "5", "7"},
			CreatedBy:     "6",
		},
		{
			ID:            "4",
			Title:         "Jive & Swing Workshop",
			Description:   "Special workshop focusing on Jive and Swing techniques",
			ScheduledDate: daysFromNow(4),
			Exercises:     []domain.Exercise{ex[0], ex[6], ex[9], ex[4]},
			AssignedTo:    []string{"3", "7"},
			CreatedBy:     "2",
		},
		{
			ID:            "5",
			Title:         "Strength & Conditioning",
			Description:   "Focus on building strength and endurance for dance",
			ScheduledDate: daysFromNow(6),
			Exercises:     []domain.Exercise{ex[0], ex[8], ex[9], ex[4]},
			AssignedTo:    []string{"3", "4", "5", "7"},
			CreatedBy:     "6",
		},
	}
}

// TrainingGateway serves the canned training plans.
type TrainingGateway struct {
	latency Latency
}

func NewTrainingGateway(latency Latency) *TrainingGateway {
	return &TrainingGateway{latency: latency}
}

func (g *TrainingGateway) List(ctx context.Context) ([]domain.TrainingPlan, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedTrainingPlans(), nil
}

func (g *TrainingGateway) Create(ctx context.Context, plan *domain.TrainingPlan) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	return plan.ID, nil
}

func (g *TrainingGateway) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	return g.latency.sleep(ctx)
}

func (g *TrainingGateway) Delete(ctx context.Context, id string) error {
	return g.latency.sleep(ctx)
}
