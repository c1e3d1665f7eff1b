package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
	"github.com/fieldops/om-dispatch/pkg/db"
)

// mockConfirmStore is a hand-rolled store for confirmAssignment tests
type mockConfirmStore struct {
	job *db.Job

	dispatched *db.Assignment
}

func (m *mockConfirmStore) GetJob(ctx context.Context, id string) (*db.Job, error) {
	return m.job, nil
}

func (m *mockConfirmStore) DispatchJob(ctx context.Context, assignment *db.Assignment) error {
	m.dispatched = assignment
	return nil
}

func testRecommendation() dispatch.Recommendation {
	lead := dispatch.Worker{ID: "w1", Name: "Sato"}
	return dispatch.Recommendation{
		Team:               []dispatch.Worker{lead, {ID: "w2", Name: "Tanaka"}},
		Score:              6.2,
		IsStretch:          true,
		StretchRatio:       0.9,
		StretchMultiplier:  1.2,
		TeamSkillTotal:     18,
		RequiredSkillTotal: 20,
		VehicleArrangement: dispatch.ArrangementSingleVehicle,
		LeadCandidate:      lead,
		Rank:               1,
	}
}

func TestConfirmAssignment_PersistsAndDispatches(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusEstimated}}

	assignment, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", testRecommendation(), db.SelectionAIRecommended)
	require.NoError(t, err)

	require.NotNil(t, store.dispatched)
	assert.NotEmpty(t, assignment.ID)
	assert.Equal(t, "job-1", assignment.JobID)
	assert.Equal(t, []string{"w1", "w2"}, assignment.MemberIDs)
	assert.Equal(t, "w1", assignment.LeadMemberID)
	assert.True(t, assignment.IsStretch)
	assert.Equal(t, string(dispatch.ArrangementSingleVehicle), assignment.VehicleArrangement)
}

func TestConfirmAssignment_RecordsAppliedMultiplier(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusEstimated}}

	// The recommendation carries the multiplier the engine resolved (here
	// the 1.2 default); the persisted record must match it, not anything
	// re-derived from configuration
	_, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", testRecommendation(), db.SelectionAIRecommended)
	require.NoError(t, err)

	require.NotNil(t, store.dispatched)
	assert.Equal(t, 1.2, store.dispatched.StretchMultiplier)
}

func TestConfirmAssignment_DraftJobAllowed(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusDraft}}

	_, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", testRecommendation(), db.SelectionManual)
	assert.NoError(t, err)
}

func TestConfirmAssignment_AlreadyDispatchedRejected(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusDispatched}}

	_, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", testRecommendation(), db.SelectionManual)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only draft or estimated")
	assert.Nil(t, store.dispatched)
}

func TestConfirmAssignment_InvalidSelectionMethod(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusDraft}}

	_, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", testRecommendation(), "guesswork")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection method")
}

func TestConfirmAssignment_EmptyTeamRejected(t *testing.T) {
	store := &mockConfirmStore{job: &db.Job{ID: "job-1", Status: db.JobStatusDraft}}

	_, err := ConfirmAssignment(context.Background(), store, zap.NewNop(),
		"job-1", dispatch.Recommendation{}, db.SelectionManual)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no team members")
}
