package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/db"
)

// DefineJobStore defines the database operations needed to create a job
type DefineJobStore interface {
	GetJobType(ctx context.Context, id string) (*db.JobType, error)
	InsertJob(ctx context.Context, job *db.Job) error
}

// DefineJobInput carries the fields for a new job. EstimatedHours of zero
// falls back to the job type's base time.
type DefineJobInput struct {
	JobTypeID       string
	Title           string
	LocationName    string
	LocationAddress string
	Latitude        *float64
	Longitude       *float64
	EstimatedHours  float64
	PreferredDate   string
	Notes           string
}

// DefineJob validates the input against its job type and inserts a new
// draft job
func DefineJob(ctx context.Context, database DefineJobStore, logger *zap.Logger, input DefineJobInput) (*db.Job, error) {
	logger.Debug("Starting defineJob",
		zap.String("job_type_id", input.JobTypeID),
		zap.String("title", input.Title))

	if input.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, fmt.Errorf("latitude and longitude must be supplied together")
	}
	if input.PreferredDate != "" {
		if _, err := time.Parse("2006-01-02", input.PreferredDate); err != nil {
			return nil, fmt.Errorf("invalid preferred date %q (expected YYYY-MM-DD): %w", input.PreferredDate, err)
		}
	}

	jobType, err := database.GetJobType(ctx, input.JobTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job type: %w", err)
	}

	estimated := input.EstimatedHours
	if estimated == 0 {
		estimated = jobType.BaseTimeHours
	}

	job := &db.Job{
		ID:              uuid.New().String(),
		JobTypeID:       jobType.ID,
		Title:           input.Title,
		Status:          db.JobStatusDraft,
		LocationName:    input.LocationName,
		LocationAddress: input.LocationAddress,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		EstimatedHours:  estimated,
		PreferredDate:   input.PreferredDate,
		Notes:           input.Notes,
	}

	if err := database.InsertJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	logger.Info("Job created",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
		zap.String("job_type", jobType.Name))

	return job, nil
}
