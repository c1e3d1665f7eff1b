package dispatch

// Skill weighting applied per dimension when totalling a team's skills
const (
	PrimarySkillWeight   = 1.0
	SecondarySkillWeight = 0.3
)

// WeightedSkillTotal sums every team member's rating on every model
// dimension, weighting primary dimensions at PrimarySkillWeight and the rest
// at SecondarySkillWeight.
func WeightedSkillTotal(team []Worker, model SkillModel, primary []SkillDimension) float64 {
	primarySet := make(map[SkillDimension]bool, len(primary))
	for _, dim := range primary {
		primarySet[dim] = true
	}

	total := 0.0
	for _, member := range team {
		for _, dim := range model.Dimensions {
			value := float64(member.Skills[dim])
			if primarySet[dim] {
				total += value * PrimarySkillWeight
			} else {
				total += value * SecondarySkillWeight
			}
		}
	}

	return total
}

// RequiredSkillTotal scales the job's per-head requirement with team size
func RequiredSkillTotal(job JobRequest, teamSize int) float64 {
	return job.RequiredSkillTotal * float64(teamSize)
}

// RawSkillScore normalizes a weighted skill total onto a 0-10 scale against
// the theoretical maximum (every member rated 10 on every dimension)
func RawSkillScore(weightedTotal float64, teamSize int, model SkillModel) float64 {
	maxPossible := float64(teamSize) * float64(len(model.Dimensions)) * 10
	if maxPossible == 0 {
		return 0
	}
	return (weightedTotal / maxPossible) * 10
}

// StretchResult describes how a team sits against the skill requirement
// under the stretch policy
type StretchResult struct {
	// IsStretch is true whenever the team is below the requirement, even
	// when it is too far below to be viable
	IsStretch bool

	// Ratio is teamSkill / required (1.0 when at or above requirement)
	Ratio float64

	// Penalty is subtracted from the raw skill score: 0 at the requirement,
	// growing linearly to the minimum-acceptable bound, and a full 10 below
	// it (which zeroes the skill contribution and lets the composite filter
	// remove the team)
	Penalty float64
}

// maxStretchPenalty zeroes the skill contribution for teams below the
// stretch threshold
const maxStretchPenalty = 10.0

// EvaluateStretch applies the bounded relaxation policy. A multiplier below
// 1.0 is treated as 1.0, so the requirement is never relaxed upward and a
// multiplier of exactly 1.0 degenerates to no stretch tolerance at all.
func EvaluateStretch(teamSkill, required, multiplier float64) StretchResult {
	if teamSkill >= required {
		return StretchResult{IsStretch: false, Ratio: 1.0, Penalty: 0}
	}

	if multiplier < 1.0 {
		multiplier = 1.0
	}

	minAcceptable := required / multiplier

	if teamSkill >= minAcceptable {
		ratio := teamSkill / required
		return StretchResult{
			IsStretch: true,
			Ratio:     ratio,
			Penalty:   (1 - ratio) * 10,
		}
	}

	// Below the stretch threshold: flagged informationally, but penalised
	// out of contention.
	return StretchResult{
		IsStretch: true,
		Ratio:     teamSkill / required,
		Penalty:   maxStretchPenalty,
	}
}
