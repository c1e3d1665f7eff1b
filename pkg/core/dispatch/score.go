package dispatch

import "math"

// Factor weights for the composite score. They sum to 1.0 so the composite
// stays on the same 0-10 scale as the factors.
const (
	WeightSkill        = 0.35
	WeightAvailability = 0.25
	WeightTravel       = 0.15
	WeightLeadership   = 0.10
	WeightGuidance     = 0.15
)

// DefaultAvailabilityScore stands in for workers with no supplied
// availability score. Calendar-derived availability is an optional input;
// the engine never resolves calendars itself.
const DefaultAvailabilityScore = 8.0

// DefaultStretchMultiplier applies when stretch mode is enabled without an
// explicit multiplier
const DefaultStretchMultiplier = 1.2

// TeamEvaluation is the scored outcome for one candidate team. Feasible
// distinguishes scoreable teams from gated ones - infeasible teams carry a
// reason instead of a sentinel score.
type TeamEvaluation struct {
	Team []Worker

	Feasible         bool
	InfeasibleReason string

	Score     float64
	Breakdown ScoreBreakdown

	IsStretch    bool
	StretchRatio float64

	// StretchMultiplier is the relaxation multiplier the evaluation
	// actually applied, after defaulting and capping
	StretchMultiplier float64

	TeamSkillTotal     float64
	RequiredSkillTotal float64

	VehicleArrangement VehicleArrangement
	VehicleDetail      string

	LeadCandidate  Worker
	MentoringPairs []MentoringPair
}

// effectiveStretchMultiplier resolves the multiplier for a run: 1.0 when
// stretch mode is off, the configured value (capped by the policy maximum)
// when on.
func effectiveStretchMultiplier(policy PolicyConfig) float64 {
	if !policy.StretchEnabled {
		return 1.0
	}
	multiplier := policy.StretchMultiplier
	if multiplier <= 0 {
		multiplier = DefaultStretchMultiplier
	} else if multiplier < 1.0 {
		multiplier = 1.0
	}
	if policy.MaxStretchMultiplier > 0 && multiplier > policy.MaxStretchMultiplier {
		multiplier = policy.MaxStretchMultiplier
	}
	return multiplier
}

// ScoreTeam runs the full per-team evaluation: vehicle gate, skill and
// stretch scoring, leadership, guidance, travel and availability factors,
// composite weighting, lead selection and mentoring pairing.
//
// availability maps worker ID to a 0-10 availability score; nil or missing
// entries fall back to DefaultAvailabilityScore.
func ScoreTeam(team []Worker, job JobRequest, policy PolicyConfig, model SkillModel, availability map[string]float64) TeamEvaluation {
	vehicle := CheckVehicleConstraints(team, policy)
	if !vehicle.Feasible {
		return TeamEvaluation{
			Team:               team,
			Feasible:           false,
			InfeasibleReason:   vehicle.Detail,
			VehicleArrangement: vehicle.Arrangement,
			VehicleDetail:      vehicle.Detail,
		}
	}

	teamSkillTotal := WeightedSkillTotal(team, model, job.PrimarySkills)
	requiredTotal := RequiredSkillTotal(job, len(team))
	multiplier := effectiveStretchMultiplier(policy)
	stretch := EvaluateStretch(teamSkillTotal, requiredTotal, multiplier)

	rawSkill := RawSkillScore(teamSkillTotal, len(team), model)
	skillScore := rawSkill - stretch.Penalty
	if skillScore < 0 {
		skillScore = 0
	}

	availabilityScore := teamAvailabilityScore(team, availability)
	travelScore := TravelScore(job, policy)
	leadershipScore := LeadershipScore(team, model)
	guidanceScore := GuidanceScore(team, model)

	composite := skillScore*WeightSkill +
		availabilityScore*WeightAvailability +
		travelScore*WeightTravel +
		leadershipScore*WeightLeadership +
		guidanceScore*WeightGuidance

	return TeamEvaluation{
		Team:     team,
		Feasible: true,
		Score:    round2(composite),
		Breakdown: ScoreBreakdown{
			Skill:        round2(skillScore),
			Availability: round2(availabilityScore),
			Travel:       round2(travelScore),
			Leadership:   leadershipScore,
			Guidance:     guidanceScore,
		},
		IsStretch:          stretch.IsStretch,
		StretchRatio:       stretch.Ratio,
		StretchMultiplier:  multiplier,
		TeamSkillTotal:     teamSkillTotal,
		RequiredSkillTotal: requiredTotal,
		VehicleArrangement: vehicle.Arrangement,
		VehicleDetail:      vehicle.Detail,
		LeadCandidate:      LeadCandidate(team, model),
		MentoringPairs:     MentoringPairs(team, model),
	}
}

// teamAvailabilityScore averages the per-worker availability scores over
// the team, defaulting absent workers to DefaultAvailabilityScore
func teamAvailabilityScore(team []Worker, availability map[string]float64) float64 {
	if len(team) == 0 {
		return DefaultAvailabilityScore
	}

	total := 0.0
	for _, member := range team {
		if score, ok := availability[member.ID]; ok {
			total += score
		} else {
			total += DefaultAvailabilityScore
		}
	}
	return total / float64(len(team))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
