package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/om-dispatch/pkg/db"
)

// GetAssignments retrieves all confirmed assignments, newest first
func (d *DB) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, job_id, member_ids, lead_member_id, team_skill_total,
		       is_stretch, stretch_multiplier, vehicle_arrangement,
		       selection_method, created_at
		FROM assignment
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.JobID, &a.MemberIDs, &a.LeadMemberID,
			&a.TeamSkillTotal, &a.IsStretch, &a.StretchMultiplier,
			&a.VehicleArrangement, &a.SelectionMethod, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignment inserts a confirmed assignment record
func (d *DB) InsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	_, err := d.pool.Exec(ctx, insertAssignmentSQL, assignmentArgs(assignment)...)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// DispatchJob inserts a confirmed assignment and moves its job to
// dispatched in a single transaction, so a failure of either write leaves
// neither behind
func (d *DB) DispatchJob(ctx context.Context, assignment *db.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(ctx, insertAssignmentSQL, assignmentArgs(assignment)...)
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE job SET status = $2, updated_at = NOW() WHERE id = $1
	`, assignment.JobID, db.JobStatusDispatched)
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return fmt.Errorf("job %s not found", assignment.JobID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dispatch: %w", err)
	}
	return nil
}

const insertAssignmentSQL = `
		INSERT INTO assignment (id, job_id, member_ids, lead_member_id, team_skill_total,
		                        is_stretch, stretch_multiplier, vehicle_arrangement, selection_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func assignmentArgs(assignment *db.Assignment) []any {
	return []any{
		assignment.ID, assignment.JobID, assignment.MemberIDs, assignment.LeadMemberID,
		assignment.TeamSkillTotal, assignment.IsStretch, assignment.StretchMultiplier,
		assignment.VehicleArrangement, assignment.SelectionMethod,
	}
}
