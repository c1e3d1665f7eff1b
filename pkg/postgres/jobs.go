package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/om-dispatch/pkg/db"
)

// GetJobs retrieves all job records, newest first
func (d *DB) GetJobs(ctx context.Context) ([]db.Job, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, job_type_id, title, status, location_name, location_address,
		       latitude, longitude, estimated_hours, preferred_date, notes,
		       created_at, updated_at
		FROM job
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []db.Job
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// GetJob retrieves a single job by ID
func (d *DB) GetJob(ctx context.Context, id string) (*db.Job, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, job_type_id, title, status, location_name, location_address,
		       latitude, longitude, estimated_hours, preferred_date, notes,
		       created_at, updated_at
		FROM job
		WHERE id = $1
	`, id)

	job, err := scanJob(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return job, nil
}

// InsertJob inserts a new job record
func (d *DB) InsertJob(ctx context.Context, job *db.Job) error {
	var preferredDate *time.Time
	if job.PreferredDate != "" {
		parsed, err := time.Parse("2006-01-02", job.PreferredDate)
		if err != nil {
			return fmt.Errorf("invalid preferred date %q: %w", job.PreferredDate, err)
		}
		preferredDate = &parsed
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO job (id, job_type_id, title, status, location_name, location_address,
		                 latitude, longitude, estimated_hours, preferred_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, job.ID, job.JobTypeID, job.Title, job.Status, job.LocationName, job.LocationAddress,
		job.Latitude, job.Longitude, job.EstimatedHours, preferredDate, job.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// UpdateJobStatus sets a job's status and bumps updated_at
func (d *DB) UpdateJobStatus(ctx context.Context, id, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE job SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}

// GetJobType retrieves a single job type by ID
func (d *DB) GetJobType(ctx context.Context, id string) (*db.JobType, error) {
	var jt db.JobType
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, base_time_hours, required_skill_total, primary_skills,
		       min_personnel, max_personnel
		FROM job_type
		WHERE id = $1
	`, id).Scan(&jt.ID, &jt.Name, &jt.BaseTimeHours, &jt.RequiredSkillTotal,
		&jt.PrimarySkills, &jt.MinPersonnel, &jt.MaxPersonnel)
	if err != nil {
		return nil, fmt.Errorf("failed to get job type %s: %w", id, err)
	}
	return &jt, nil
}

// GetJobTypes retrieves all job type records
func (d *DB) GetJobTypes(ctx context.Context) ([]db.JobType, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, base_time_hours, required_skill_total, primary_skills,
		       min_personnel, max_personnel
		FROM job_type
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query job types: %w", err)
	}
	defer rows.Close()

	var jobTypes []db.JobType
	for rows.Next() {
		var jt db.JobType
		if err := rows.Scan(&jt.ID, &jt.Name, &jt.BaseTimeHours, &jt.RequiredSkillTotal,
			&jt.PrimarySkills, &jt.MinPersonnel, &jt.MaxPersonnel); err != nil {
			return nil, fmt.Errorf("failed to scan job type: %w", err)
		}
		jobTypes = append(jobTypes, jt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job types: %w", err)
	}

	return jobTypes, nil
}

// scanJob scans a job row, converting timestamps to strings
func scanJob(scan func(...any) error) (*db.Job, error) {
	var job db.Job
	var preferredDate *time.Time
	var createdAt, updatedAt time.Time

	err := scan(&job.ID, &job.JobTypeID, &job.Title, &job.Status,
		&job.LocationName, &job.LocationAddress, &job.Latitude, &job.Longitude,
		&job.EstimatedHours, &preferredDate, &job.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	if preferredDate != nil {
		job.PreferredDate = preferredDate.Format("2006-01-02")
	}
	job.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	job.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)

	return &job, nil
}
