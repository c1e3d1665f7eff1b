package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadershipScore_MaxAcrossTeam(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimLeadership: 3}},
		{ID: "w2", Skills: map[SkillDimension]int{DimLeadership: 7}},
		{ID: "w3", Skills: map[SkillDimension]int{DimLeadership: 5}},
	}

	assert.Equal(t, 7.0, LeadershipScore(team, model))
}

func TestLeadershipScore_EmptyTeam(t *testing.T) {
	assert.Zero(t, LeadershipScore(nil, twoDimModel()))
}

func TestLeadershipScore_ClampedToTen(t *testing.T) {
	model := twoDimModel()
	team := []Worker{{ID: "w1", Skills: map[SkillDimension]int{DimLeadership: 12}}}

	assert.Equal(t, 10.0, LeadershipScore(team, model))
}

func TestGuidanceScore_NoJuniors_Neutral(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 8, DimLeadership: 8}},
	}

	assert.Equal(t, NeutralGuidanceScore, GuidanceScore(team, model))
}

func TestGuidanceScore_JuniorWithEligibleMentor(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// avg (4+8)/2 = 6, above the 4.5 mentor threshold
		{ID: "mentor", Skills: map[SkillDimension]int{DimTechnical: 4, DimLeadership: 8}},
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{DimTechnical: 2, DimLeadership: 2}},
	}

	// min(5 + 6, 10) = 10
	assert.Equal(t, 10.0, GuidanceScore(team, model))
}

func TestGuidanceScore_BonusCappedAtTen(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// avg 5.0 exactly: 5 + 5 = 10, at the cap
		{ID: "mentor", Skills: map[SkillDimension]int{DimTechnical: 5, DimLeadership: 5}},
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{}},
	}

	assert.Equal(t, 10.0, GuidanceScore(team, model))
}

func TestGuidanceScore_JuniorWithoutMentor(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// avg (2+3)/2 = 2.5, below the 4.5 threshold
		{ID: "weak", Skills: map[SkillDimension]int{DimTechnical: 2, DimLeadership: 3}},
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{DimTechnical: 2}},
	}

	assert.Zero(t, GuidanceScore(team, model))
}

func TestGuidanceScore_JuniorCannotMentorThemselves(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// High average but flagged as needing guidance: not an eligible mentor
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{DimTechnical: 9, DimLeadership: 9}},
	}

	assert.Zero(t, GuidanceScore(team, model))
}

func TestLeadCandidate_HighestLeadership(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimLeadership: 3}},
		{ID: "w2", Skills: map[SkillDimension]int{DimLeadership: 9}},
	}

	assert.Equal(t, "w2", LeadCandidate(team, model).ID)
}

func TestLeadCandidate_TieKeepsRosterOrder(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimLeadership: 6}},
		{ID: "w2", Skills: map[SkillDimension]int{DimLeadership: 6}},
	}

	assert.Equal(t, "w1", LeadCandidate(team, model).ID)
}

func TestMentoringPairs_NoJuniors(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 8, DimLeadership: 8}},
	}

	assert.Empty(t, MentoringPairs(team, model))
}

func TestMentoringPairs_BestMentorChosen(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// avg 4.5
		{ID: "ok", Skills: map[SkillDimension]int{DimTechnical: 4, DimLeadership: 5}},
		// avg 8.0 - the strongest eligible mentor
		{ID: "best", Skills: map[SkillDimension]int{DimTechnical: 8, DimLeadership: 8}},
		{ID: "junior", NeedsGuidance: true, Skills: map[SkillDimension]int{DimTechnical: 2}},
	}

	pairs := MentoringPairs(team, model)
	require.Len(t, pairs, 1)
	assert.Equal(t, "junior", pairs[0].Junior.ID)
	require.NotNil(t, pairs[0].Mentor)
	assert.Equal(t, "best", pairs[0].Mentor.ID)
}

func TestMentoringPairs_CoverageGapSurfaced(t *testing.T) {
	model := twoDimModel()
	team := []Worker{
		// avg 3.0, below the 4.0 pairing threshold
		{ID: "weak", Skills: map[SkillDimension]int{DimTechnical: 3, DimLeadership: 3}},
		{ID: "junior1", NeedsGuidance: true, Skills: map[SkillDimension]int{}},
		{ID: "junior2", NeedsGuidance: true, Skills: map[SkillDimension]int{}},
	}

	pairs := MentoringPairs(team, model)
	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[0].Mentor)
	assert.Nil(t, pairs[1].Mentor)
}

func TestAvgSkill(t *testing.T) {
	model := twoDimModel()
	worker := Worker{ID: "w1", Skills: map[SkillDimension]int{DimTechnical: 4, DimLeadership: 8}}

	assert.InDelta(t, 6.0, worker.AvgSkill(model), 1e-9)
	assert.Zero(t, worker.AvgSkill(SkillModel{}))
}
