package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
	"github.com/fieldops/om-dispatch/pkg/db"
)

// ListWorkersStore defines the database operations needed to list the
// roster
type ListWorkersStore interface {
	GetWorkers(ctx context.Context) ([]db.Worker, error)
}

// WorkerSummary is a roster entry with derived skill information
type WorkerSummary struct {
	ID             string
	Name           string
	EmploymentType string
	HasVehicle     bool
	NeedsGuidance  bool
	AvgSkill       float64
	SkillLevel     string
}

// ListWorkers returns roster summaries with average skill and level labels
func ListWorkers(ctx context.Context, database ListWorkersStore, model dispatch.SkillModel, logger *zap.Logger) ([]WorkerSummary, error) {
	workers, err := database.GetWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	logger.Debug("Fetched workers", zap.Int("count", len(workers)))

	summaries := make([]WorkerSummary, 0, len(workers))
	for _, w := range workers {
		avg := toEngineWorker(w).AvgSkill(model)
		summaries = append(summaries, WorkerSummary{
			ID:             w.ID,
			Name:           w.Name,
			EmploymentType: w.EmploymentType,
			HasVehicle:     w.HasVehicle,
			NeedsGuidance:  w.NeedsGuidance,
			AvgSkill:       avg,
			SkillLevel:     skillLevel(avg),
		})
	}

	return summaries, nil
}

// skillLevel labels an average skill value
func skillLevel(avg float64) string {
	switch {
	case avg >= 9:
		return "expert"
	case avg >= 7:
		return "advanced"
	case avg >= 5:
		return "intermediate"
	case avg >= 3:
		return "basic"
	default:
		return "novice"
	}
}
