package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTeam_InfeasibleVehicle(t *testing.T) {
	policy := PolicyConfig{VehicleCapacity: 4, SoloDriverID: "solo"}
	team := append(namedRoster(5), Worker{ID: "solo"})

	eval := ScoreTeam(team, JobRequest{RequiredSkillTotal: 10}, policy, twoDimModel(), nil)

	assert.False(t, eval.Feasible)
	assert.Equal(t, ArrangementInvalid, eval.VehicleArrangement)
	assert.NotEmpty(t, eval.InfeasibleReason)
	assert.Zero(t, eval.Score)
	assert.Empty(t, eval.MentoringPairs)
}

func TestScoreTeam_CompositeWeighting(t *testing.T) {
	model := twoDimModel()
	policy := PolicyConfig{VehicleCapacity: 4}
	// One worker, full marks: weighted total with leadership primary =
	// 10*0.3 + 10*1.0 = 13, required = 10, no stretch.
	// raw skill = 13/(1*2*10)*10 = 6.5
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 10, DimLeadership: 10}},
	}
	job := JobRequest{RequiredSkillTotal: 10, PrimarySkills: []SkillDimension{DimLeadership}}

	eval := ScoreTeam(team, job, policy, model, nil)

	require.True(t, eval.Feasible)
	assert.False(t, eval.IsStretch)
	assert.InDelta(t, 6.5, eval.Breakdown.Skill, 1e-9)
	assert.Equal(t, DefaultAvailabilityScore, eval.Breakdown.Availability)
	assert.Equal(t, DefaultTravelScore, eval.Breakdown.Travel)
	assert.Equal(t, 10.0, eval.Breakdown.Leadership)
	assert.Equal(t, NeutralGuidanceScore, eval.Breakdown.Guidance)

	// 6.5*0.35 + 8*0.25 + 8*0.15 + 10*0.10 + 5*0.15 = 7.225
	assert.InDelta(t, 7.225, eval.Score, 0.01)
}

func TestScoreTeam_StretchPenaltyApplied(t *testing.T) {
	model := twoDimModel()
	policy := PolicyConfig{VehicleCapacity: 4, StretchEnabled: true, StretchMultiplier: 2.0}
	// Weighted total = 5*0.3 + 5*1.0 = 6.5, required 10, min acceptable 5.
	// ratio 0.65, penalty 3.5, raw = 6.5/20*10 = 3.25, skill = 0 (floored)
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 5, DimLeadership: 5}},
	}
	job := JobRequest{RequiredSkillTotal: 10, PrimarySkills: []SkillDimension{DimLeadership}}

	eval := ScoreTeam(team, job, policy, model, nil)

	require.True(t, eval.Feasible)
	assert.True(t, eval.IsStretch)
	assert.InDelta(t, 0.65, eval.StretchRatio, 1e-9)
	assert.Zero(t, eval.Breakdown.Skill)
}

func TestScoreTeam_StretchDisabledMeansNoTolerance(t *testing.T) {
	model := twoDimModel()
	policy := PolicyConfig{VehicleCapacity: 4, StretchEnabled: false, StretchMultiplier: 2.0}
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 5, DimLeadership: 5}},
	}
	job := JobRequest{RequiredSkillTotal: 10, PrimarySkills: []SkillDimension{DimLeadership}}

	eval := ScoreTeam(team, job, policy, model, nil)

	// Below requirement with stretch off: full penalty regardless of the
	// configured multiplier
	assert.True(t, eval.IsStretch)
	assert.Zero(t, eval.Breakdown.Skill)
}

func TestScoreTeam_MaxMultiplierCap(t *testing.T) {
	policy := PolicyConfig{
		StretchEnabled:       true,
		StretchMultiplier:    3.0,
		MaxStretchMultiplier: 1.2,
	}

	assert.Equal(t, 1.2, effectiveStretchMultiplier(policy))
}

func TestScoreTeam_DefaultMultiplierWhenEnabled(t *testing.T) {
	policy := PolicyConfig{StretchEnabled: true}

	assert.Equal(t, DefaultStretchMultiplier, effectiveStretchMultiplier(policy))
}

func TestScoreTeam_AppliedMultiplierSurfaced(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 9, DimLeadership: 9}},
	}
	// Weighted total = 9*0.3 + 9*1.0 = 11.7, just under the requirement
	job := JobRequest{RequiredSkillTotal: 12, PrimarySkills: []SkillDimension{DimLeadership}}

	// Stretch enabled with no configured multiplier: the evaluation must
	// report the 1.2 default it actually applied, so callers persist the
	// real value rather than the unset configuration one
	eval := ScoreTeam(team, job, PolicyConfig{VehicleCapacity: 4, StretchEnabled: true}, model, nil)
	require.True(t, eval.IsStretch)
	assert.Equal(t, DefaultStretchMultiplier, eval.StretchMultiplier)

	// Stretch disabled: the applied multiplier is 1.0 regardless of config
	eval = ScoreTeam(team, job, PolicyConfig{VehicleCapacity: 4, StretchMultiplier: 2.0}, model, nil)
	assert.Equal(t, 1.0, eval.StretchMultiplier)
}

func TestScoreTeam_SuppliedAvailabilityScores(t *testing.T) {
	model := twoDimModel()
	policy := PolicyConfig{VehicleCapacity: 4}
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 10, DimLeadership: 10}},
		{ID: "w2", Skills: map[SkillDimension]int{DimTechnical: 10, DimLeadership: 10}},
	}
	job := JobRequest{RequiredSkillTotal: 1, PrimarySkills: []SkillDimension{DimLeadership}}

	// w1 has a supplied score, w2 falls back to the default:
	// (4 + 8) / 2 = 6
	eval := ScoreTeam(team, job, policy, model, map[string]float64{"w1": 4})

	assert.InDelta(t, 6.0, eval.Breakdown.Availability, 1e-9)
}

func TestScoreTeam_LeadAndPairsPopulated(t *testing.T) {
	model := twoDimModel()
	policy := PolicyConfig{VehicleCapacity: 4}
	team := []Worker{
		{ID: "lead", Skills: map[SkillDimension]int{DimTechnical: 8, DimLeadership: 9}},
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{DimTechnical: 3, DimLeadership: 1}},
	}
	job := JobRequest{RequiredSkillTotal: 1, PrimarySkills: []SkillDimension{DimLeadership}}

	eval := ScoreTeam(team, job, policy, model, nil)

	require.True(t, eval.Feasible)
	assert.Equal(t, "lead", eval.LeadCandidate.ID)
	require.Len(t, eval.MentoringPairs, 1)
	require.NotNil(t, eval.MentoringPairs[0].Mentor)
	assert.Equal(t, "lead", eval.MentoringPairs[0].Mentor.ID)
}
