package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
	"github.com/fieldops/om-dispatch/pkg/db"
)

// ConfirmAssignmentStore defines the database operations needed to persist
// a confirmed assignment
type ConfirmAssignmentStore interface {
	GetJob(ctx context.Context, id string) (*db.Job, error)
	DispatchJob(ctx context.Context, assignment *db.Assignment) error
}

// confirmableStatuses are the job statuses an assignment can be confirmed
// from
var confirmableStatuses = map[string]bool{
	db.JobStatusDraft:     true,
	db.JobStatusEstimated: true,
}

// validSelectionMethods for a confirmed assignment
var validSelectionMethods = map[string]bool{
	db.SelectionAIRecommended: true,
	db.SelectionManual:        true,
	db.SelectionAIModified:    true,
}

// ConfirmAssignment persists a human-confirmed recommendation as an
// assignment and moves the job to dispatched. The recommendation itself is
// whatever the caller picked from RecommendTeams - including one with an
// unresolved mentoring gap, which is the caller's decision to accept.
func ConfirmAssignment(
	ctx context.Context,
	database ConfirmAssignmentStore,
	logger *zap.Logger,
	jobID string,
	rec dispatch.Recommendation,
	selectionMethod string,
) (*db.Assignment, error) {
	logger.Debug("Starting confirmAssignment",
		zap.String("job_id", jobID),
		zap.Int("rank", rec.Rank),
		zap.String("selection_method", selectionMethod))

	if len(rec.Team) == 0 {
		return nil, fmt.Errorf("recommendation has no team members")
	}
	if !validSelectionMethods[selectionMethod] {
		return nil, fmt.Errorf("invalid selection method %q", selectionMethod)
	}

	job, err := database.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	if !confirmableStatuses[job.Status] {
		return nil, fmt.Errorf("job %s is %s - only draft or estimated jobs can be dispatched", jobID, job.Status)
	}

	memberIDs := make([]string, len(rec.Team))
	for i, member := range rec.Team {
		memberIDs[i] = member.ID
	}

	assignment := &db.Assignment{
		ID:                 uuid.New().String(),
		JobID:              jobID,
		MemberIDs:          memberIDs,
		LeadMemberID:       rec.LeadCandidate.ID,
		TeamSkillTotal:     rec.TeamSkillTotal,
		IsStretch:          rec.IsStretch,
		StretchMultiplier:  rec.StretchMultiplier,
		VehicleArrangement: string(rec.VehicleArrangement),
		SelectionMethod:    selectionMethod,
	}

	if err := database.DispatchJob(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to dispatch job: %w", err)
	}

	logger.Info("Assignment confirmed",
		zap.String("assignment_id", assignment.ID),
		zap.String("job_id", jobID),
		zap.Strings("member_ids", memberIDs),
		zap.String("lead", assignment.LeadMemberID),
		zap.Bool("is_stretch", assignment.IsStretch))

	return assignment, nil
}
