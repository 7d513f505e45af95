package store

import (
	"context"
	"testing"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainingStore(t *testing.T, kv persist.KV) *TrainingStore {
	t.Helper()
	return NewTrainingStore(context.Background(), mock.NewTrainingGateway(noDelay), kv)
}

func planIDs(plans []domain.TrainingPlan) []string {
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return ids
}

func TestFetchTrainingPlans(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.Plans(), 5)
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestMyPlansForCoachUsesCreatedBy(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Coach "2" created plans 1, 2 and 4; being unassigned is irrelevant.
	mine := s.MyPlans("2", domain.RoleCoach)
	assert.ElementsMatch(t, []string{"1", "2", "4"}, planIDs(mine))
}

func TestMyPlansForDancerUsesAssignment(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Dancer "4" is assigned to plans 1, 2, 3 and 5 but not 4.
	mine := s.MyPlans("4", domain.RoleDancer)
	assert.ElementsMatch(t, []string{"1", "2", "3", "5"}, planIDs(mine))
}

func TestMyPlansWithoutSessionIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	assert.Empty(t, s.MyPlans("", domain.RoleDancer))
}

func TestAssignReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Assign(ctx, "1", []string{"7"}))

	plan := s.PlanByID("1")
	require.NotNil(t, plan)
	assert.Equal(t, []string{"7"}, plan.AssignedTo)
}

func TestPlansOnMatchesCalendarDay(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Plan 2 is scheduled tomorrow; any instant of that day matches.
	tomorrow := time.Now().Add(24 * time.Hour)
	morning := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 6, 0, 0, 0, tomorrow.Location())
	assert.Contains(t, planIDs(s.PlansOn(morning)), "2")
}

func TestPlansBetweenUsesDayGranularity(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Days 0..4 cover plans 1 (today), 2 (+1), 3 (+2) and 4 (+4) but not
	// 5 (+6). The end day is included up to its last instant.
	start := time.Now()
	end := time.Now().Add(4 * 24 * time.Hour)
	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, planIDs(s.PlansBetween(start, end)))
}

func TestTotalDuration(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	// Plan 1: warm-up 15 + basic drills 20 + rumba 30 + cool down 15.
	plan := s.PlanByID("1")
	require.NotNil(t, plan)
	assert.Equal(t, 80, plan.TotalDuration())
}

func TestAddTrainingPlan(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	created, err := s.Add(ctx, domain.TrainingPlan{
		Title:         "Footwork Drills",
		ScheduledDate: time.Now().Add(48 * time.Hour),
		CreatedBy:     "2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.Plans(), 6)
}

func TestUpdateUnknownPlanIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	title := "Renamed"
	require.NoError(t, s.Update(ctx, "missing", TrainingPatch{Title: &title}))
	assert.Len(t, s.Plans(), 5)
	assert.NoError(t, s.Err())
}

func TestDeleteTrainingPlan(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.Delete(ctx, "5"))
	assert.Nil(t, s.PlanByID("5"))
	assert.Len(t, s.Plans(), 4)
}
