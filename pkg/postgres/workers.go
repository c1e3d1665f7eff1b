package postgres

import (
	"context"
	"fmt"

	"github.com/fieldops/om-dispatch/pkg/db"
)

// GetWorkers retrieves all roster workers ordered by insertion
func (d *DB) GetWorkers(ctx context.Context) ([]db.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, employment_type, has_vehicle, needs_guidance, skills
		FROM worker
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []db.Worker
	for rows.Next() {
		var w db.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.EmploymentType, &w.HasVehicle, &w.NeedsGuidance, &w.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}

// GetWorker retrieves a single worker by ID
func (d *DB) GetWorker(ctx context.Context, id string) (*db.Worker, error) {
	var w db.Worker
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, employment_type, has_vehicle, needs_guidance, skills
		FROM worker
		WHERE id = $1
	`, id).Scan(&w.ID, &w.Name, &w.EmploymentType, &w.HasVehicle, &w.NeedsGuidance, &w.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker %s: %w", id, err)
	}
	return &w, nil
}

// InsertWorker inserts a new roster worker
func (d *DB) InsertWorker(ctx context.Context, worker *db.Worker) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO worker (id, name, employment_type, has_vehicle, needs_guidance, skills)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, worker.ID, worker.Name, worker.EmploymentType, worker.HasVehicle, worker.NeedsGuidance, worker.Skills)
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}
