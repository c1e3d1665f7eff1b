package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/internal/config"
	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
	"github.com/fieldops/om-dispatch/pkg/db"
)

// RecommendTeamsStore defines the database operations needed to rank teams
// for a job
type RecommendTeamsStore interface {
	GetWorkers(ctx context.Context) ([]db.Worker, error)
	GetJob(ctx context.Context, id string) (*db.Job, error)
	GetJobType(ctx context.Context, id string) (*db.JobType, error)
}

// RecommendTeamsResult contains the ranked recommendations for a job
type RecommendTeamsResult struct {
	JobID           string
	JobTitle        string
	JobTypeName     string
	RosterSize      int
	Recommendations []dispatch.Recommendation
}

// RecommendTeams loads the roster, job, and job type from the store, runs
// the ranking engine, and returns the top recommendations. The engine is
// pure - nothing is persisted here; a human confirms a recommendation via
// ConfirmAssignment.
//
// availableWorkerIDs, when non-nil, restricts the roster before enumeration
// (supplied by the calendar collaborator). A nil slice means no pre-filter.
func RecommendTeams(
	ctx context.Context,
	database RecommendTeamsStore,
	cfg *config.Config,
	logger *zap.Logger,
	jobID string,
	availableWorkerIDs []string,
) (*RecommendTeamsResult, error) {
	logger.Debug("Starting recommendTeams", zap.String("job_id", jobID))

	job, err := database.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}

	jobType, err := database.GetJobType(ctx, job.JobTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job type: %w", err)
	}
	logger.Debug("Loaded job",
		zap.String("title", job.Title),
		zap.String("job_type", jobType.Name),
		zap.Int("min_personnel", jobType.MinPersonnel),
		zap.Int("max_personnel", jobType.MaxPersonnel))

	workers, err := database.GetWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	logger.Debug("Loaded roster", zap.Int("count", len(workers)))

	model := cfg.SkillModel()
	roster := make([]dispatch.Worker, 0, len(workers))
	for _, w := range workers {
		roster = append(roster, toEngineWorker(w))
	}

	in := dispatch.RankInput{
		Roster:             roster,
		Job:                toEngineJob(job, jobType),
		Policy:             cfg.PolicyConfig(),
		Model:              model,
		AvailabilityFilter: availableWorkerIDs,
	}

	recommendations, err := dispatch.RankTeams(in)
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}
	logger.Info("Ranked candidate teams",
		zap.String("job_id", jobID),
		zap.Int("recommendations", len(recommendations)))

	return &RecommendTeamsResult{
		JobID:           job.ID,
		JobTitle:        job.Title,
		JobTypeName:     jobType.Name,
		RosterSize:      len(roster),
		Recommendations: recommendations,
	}, nil
}

// toEngineWorker converts a store worker record into the engine's type
func toEngineWorker(w db.Worker) dispatch.Worker {
	skills := make(map[dispatch.SkillDimension]int, len(w.Skills))
	for dim, value := range w.Skills {
		skills[dispatch.SkillDimension(dim)] = value
	}
	return dispatch.Worker{
		ID:             w.ID,
		Name:           w.Name,
		EmploymentType: w.EmploymentType,
		HasVehicle:     w.HasVehicle,
		NeedsGuidance:  w.NeedsGuidance,
		Skills:         skills,
	}
}

// toEngineJob merges a job record and its job type into the engine's
// JobRequest
func toEngineJob(job *db.Job, jobType *db.JobType) dispatch.JobRequest {
	primary := make([]dispatch.SkillDimension, len(jobType.PrimarySkills))
	for i, dim := range jobType.PrimarySkills {
		primary[i] = dispatch.SkillDimension(dim)
	}
	return dispatch.JobRequest{
		ID:                 job.ID,
		RequiredSkillTotal: jobType.RequiredSkillTotal,
		PrimarySkills:      primary,
		MinPersonnel:       jobType.MinPersonnel,
		MaxPersonnel:       jobType.MaxPersonnel,
		Latitude:           job.Latitude,
		Longitude:          job.Longitude,
		EstimatedHours:     job.EstimatedHours,
	}
}
