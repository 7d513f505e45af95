package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
)

// TrainingPatch is a partial update to a training plan. Nil fields are left
// untouched; Exercises and AssignedTo replace wholesale when set.
type TrainingPatch struct {
	Title         *string
	Description   *string
	ScheduledDate *time.Time
	Exercises     *[]domain.Exercise
	AssignedTo    *[]string
	CreatedBy     *string
}

func (p TrainingPatch) apply(plan *domain.TrainingPlan) {
	setString(&plan.Title, p.Title)
	setString(&plan.Description, p.Description)
	setString(&plan.CreatedBy, p.CreatedBy)
	if p.ScheduledDate != nil {
		plan.ScheduledDate = *p.ScheduledDate
	}
	if p.Exercises != nil {
		plan.Exercises = *p.Exercises
	}
	if p.AssignedTo != nil {
		plan.AssignedTo = *p.AssignedTo
	}
}

// TrainingStore owns the training-plan collection. Session-scoped queries
// take the caller's user id and role explicitly; the store never reads the
// auth session itself.
type TrainingStore struct {
	base
	backend gateway.TrainingGateway
	plans   []domain.TrainingPlan
}

// NewTrainingStore builds the store and rehydrates any persisted plans.
func NewTrainingStore(ctx context.Context, backend gateway.TrainingGateway, kv persist.KV) *TrainingStore {
	s := &TrainingStore{base: newBase(kv, persist.KeyTraining), backend: backend}
	s.restore(ctx, &s.plans)
	return s
}

// Fetch replaces the collection with the backend's plan list.
func (s *TrainingStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	plans, err := s.backend.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch training plans: %w", err)
	}
	applied := s.resolve(gen, err, func() { s.plans = plans })
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, plans)
	}
	return nil
}

// Add creates a new plan with a fresh id and returns it.
func (s *TrainingStore) Add(ctx context.Context, plan domain.TrainingPlan) (*domain.TrainingPlan, error) {
	gen := s.begin()
	plan.ID = uuid.NewString()

	if _, err := s.backend.Create(ctx, &plan); err != nil {
		err = fmt.Errorf("add training plan: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}

	var snap []domain.TrainingPlan
	if s.resolve(gen, nil, func() {
		s.plans = append(s.plans, plan)
		snap = clonePlans(s.plans)
	}) {
		s.snapshot(ctx, snap)
	}
	return &plan, nil
}

// Update merges a patch into the plan with the given id. A missing id is a
// silent no-op.
func (s *TrainingStore) Update(ctx context.Context, id string, patch TrainingPatch) error {
	gen := s.begin()

	s.mu.RLock()
	var updated *domain.TrainingPlan
	for i := range s.plans {
		if s.plans[i].ID == id {
			p := s.plans[i]
			patch.apply(&p)
			updated = &p
			break
		}
	}
	s.mu.RUnlock()

	if updated != nil {
		if err := s.backend.Update(ctx, updated); err != nil && !errors.Is(err, gateway.ErrNotFound) {
			err = fmt.Errorf("update training plan: %w", err)
			s.resolve(gen, err, nil)
			return err
		}
	}

	var snap []domain.TrainingPlan
	if s.resolve(gen, nil, func() {
		for i := range s.plans {
			if s.plans[i].ID == id {
				patch.apply(&s.plans[i])
			}
		}
		snap = clonePlans(s.plans)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Delete removes the plan with the given id. A missing id is a silent no-op.
func (s *TrainingStore) Delete(ctx context.Context, id string) error {
	gen := s.begin()

	if err := s.backend.Delete(ctx, id); err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("delete training plan: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	var snap []domain.TrainingPlan
	if s.resolve(gen, nil, func() {
		kept := s.plans[:0]
		for _, p := range s.plans {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.plans = kept
		snap = clonePlans(s.plans)
	}) {
		s.snapshot(ctx, snap)
	}
	return nil
}

// Assign replaces the plan's assignee list wholesale. Not additive.
func (s *TrainingStore) Assign(ctx context.Context, id string, userIDs []string) error {
	return s.Update(ctx, id, TrainingPatch{AssignedTo: &userIDs})
}

// Plans returns a copy of the whole collection.
func (s *TrainingStore) Plans() []domain.TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePlans(s.plans)
}

// PlanByID returns the plan, or nil when absent. Pure read.
func (s *TrainingStore) PlanByID(id string) *domain.TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.plans {
		if s.plans[i].ID == id {
			p := s.plans[i]
			return &p
		}
	}
	return nil
}

// PlansByUser returns plans assigned to the user.
func (s *TrainingStore) PlansByUser(userID string) []domain.TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TrainingPlan, 0)
	for _, p := range s.plans {
		if p.AssignedToUser(userID) {
			out = append(out, p)
		}
	}
	return out
}

// MyPlans returns the plans visible to the given session: coaches see plans
// they created, everyone else sees plans assigned to them.
func (s *TrainingStore) MyPlans(userID string, role domain.Role) []domain.TrainingPlan {
	if userID == "" {
		return []domain.TrainingPlan{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TrainingPlan, 0)
	for _, p := range s.plans {
		if role == domain.RoleCoach {
			if p.CreatedBy == userID {
				out = append(out, p)
			}
		} else if p.AssignedToUser(userID) {
			out = append(out, p)
		}
	}
	return out
}

// PlansOn returns plans scheduled on the same calendar day as date.
func (s *TrainingStore) PlansOn(date time.Time) []domain.TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TrainingPlan, 0)
	for _, p := range s.plans {
		if p.ScheduledOn(date) {
			out = append(out, p)
		}
	}
	return out
}

// PlansBetween returns plans scheduled within [start, end], compared at
// calendar-day granularity: start is floored to midnight and end raised to
// the last instant of its day.
func (s *TrainingStore) PlansBetween(start, end time.Time) []domain.TrainingPlan {
	dayStart := startOfDay(start)
	dayEnd := startOfDay(end).Add(24*time.Hour - time.Nanosecond)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TrainingPlan, 0)
	for _, p := range s.plans {
		if !p.ScheduledDate.Before(dayStart) && !p.ScheduledDate.After(dayEnd) {
			out = append(out, p)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clonePlans(plans []domain.TrainingPlan) []domain.TrainingPlan {
	out := make([]domain.TrainingPlan, len(plans))
	copy(out, plans)
	return out
}
