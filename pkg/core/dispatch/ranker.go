package dispatch

import (
	"fmt"
	"sort"
)

// MaxRecommendations is how many ranked teams a call returns at most
const MaxRecommendations = 5

// RankInput carries everything one ranking invocation needs. The engine
// reads it as an immutable snapshot - nothing here is mutated and nothing
// persists between calls.
type RankInput struct {
	Roster []Worker
	Job    JobRequest
	Policy PolicyConfig

	// Model is the skill-dimension configuration; zero value falls back to
	// DefaultSkillModel
	Model SkillModel

	// AvailabilityFilter, when non-nil, restricts the roster to these
	// worker IDs before enumeration (supplied by the calendar collaborator)
	AvailabilityFilter []string

	// Availability maps worker ID to a 0-10 availability score; missing
	// workers default to DefaultAvailabilityScore
	Availability map[string]float64
}

// RankTeams enumerates every candidate team for the job, evaluates each one,
// and returns the surviving teams ranked best-first.
//
// Malformed personnel bounds (min < 1 or min > max) are a caller error and
// rejected before enumeration. An empty roster, or bounds no roster subset
// can satisfy, are not errors - they yield an empty result the caller
// renders as an empty state.
func RankTeams(in RankInput) ([]Recommendation, error) {
	job := in.Job
	if job.MinPersonnel < 1 || job.MaxPersonnel < job.MinPersonnel {
		return nil, fmt.Errorf("invalid personnel bounds: min %d, max %d", job.MinPersonnel, job.MaxPersonnel)
	}

	model := in.Model
	if len(model.Dimensions) == 0 {
		model = DefaultSkillModel()
	}

	roster := applyAvailabilityFilter(in.Roster, in.AvailabilityFilter)
	if len(roster) == 0 || job.MinPersonnel > len(roster) {
		return []Recommendation{}, nil
	}

	candidates := Combinations(roster, job.MinPersonnel, job.MaxPersonnel)

	var feasible []TeamEvaluation
	for _, team := range candidates {
		eval := ScoreTeam(team, job, in.Policy, model, in.Availability)
		if eval.Feasible && eval.Score > 0 {
			feasible = append(feasible, eval)
		}
	}

	// Stable sort keeps enumeration order on score ties, so rankings are
	// reproducible run to run.
	sort.SliceStable(feasible, func(i, j int) bool {
		return feasible[i].Score > feasible[j].Score
	})

	if len(feasible) > MaxRecommendations {
		feasible = feasible[:MaxRecommendations]
	}

	recommendations := make([]Recommendation, 0, len(feasible))
	for i, eval := range feasible {
		recommendations = append(recommendations, Recommendation{
			Team:               eval.Team,
			Score:              eval.Score,
			Breakdown:          eval.Breakdown,
			IsStretch:          eval.IsStretch,
			StretchRatio:       eval.StretchRatio,
			StretchMultiplier:  eval.StretchMultiplier,
			TeamSkillTotal:     eval.TeamSkillTotal,
			RequiredSkillTotal: eval.RequiredSkillTotal,
			VehicleArrangement: eval.VehicleArrangement,
			VehicleDetail:      eval.VehicleDetail,
			LeadCandidate:      eval.LeadCandidate,
			MentoringPairs:     eval.MentoringPairs,
			Rank:               i + 1,
		})
	}

	return recommendations, nil
}

// applyAvailabilityFilter keeps only workers named in the filter, preserving
// roster order. A nil filter keeps everyone.
func applyAvailabilityFilter(roster []Worker, filter []string) []Worker {
	if filter == nil {
		return roster
	}

	allowed := make(map[string]bool, len(filter))
	for _, id := range filter {
		allowed[id] = true
	}

	filtered := make([]Worker, 0, len(roster))
	for _, worker := range roster {
		if allowed[worker.ID] {
			filtered = append(filtered, worker)
		}
	}
	return filtered
}
