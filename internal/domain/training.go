package domain

import "time"

// Exercise is a single exercise embedded in a training plan.
// Exercises are owned exclusively by their plan.
type Exercise struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description"`
	Duration    int    `bson:"duration" json:"duration"` // Minutes, >= 0
	VideoID     string `bson:"videoId,omitempty" json:"videoId,omitempty"`
}

// TrainingPlan represents a scheduled training session with its exercises.
type TrainingPlan struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	Title         string     `bson:"title" json:"title"`
	Description   string     `bson:"description,omitempty" json:"description"`
	ScheduledDate time.Time  `bson:"scheduledDate" json:"scheduledDate"`
	Exercises     []Exercise `bson:"exercises" json:"exercises"`
	AssignedTo    []string   `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"` // User.IDs
	CreatedBy     string     `bson:"createdBy" json:"createdBy"`                       // User.ID of the coach
}

// TotalDuration sums the durations of all exercises, in minutes.
func (p *TrainingPlan) TotalDuration() int {
	total := 0
	for _, ex := range p.Exercises {
		total += ex.Duration
	}
	return total
}

// AssignedToUser reports whether the plan is assigned to the user.
func (p *TrainingPlan) AssignedToUser(userID string) bool {
	for _, id := range p.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// ScheduledOn reports whether the plan falls on the same calendar day as t.
// Time of day is ignored.
func (p *TrainingPlan) ScheduledOn(t time.Time) bool {
	py, pm, pd := p.ScheduledDate.Date()
	ty, tm, td := t.Date()
	return py == ty && pm == tm && pd == td
}
