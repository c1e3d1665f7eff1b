package dispatch

// Mentoring thresholds on a worker's average skill
const (
	// MentorMinAvgSkill is the minimum average for a worker to count as an
	// eligible mentor when scoring guidance coverage
	MentorMinAvgSkill = 4.5

	// PairingMentorMinAvgSkill is the (slightly lower) minimum average for
	// a worker to be matched into a mentoring pair
	PairingMentorMinAvgSkill = 4.0

	// NeutralGuidanceScore is returned when nobody on the team needs
	// guidance
	NeutralGuidanceScore = 5.0
)

// LeadershipScore is the team's best rating on the leadership dimension,
// clamped to [0, 10]
func LeadershipScore(team []Worker, model SkillModel) float64 {
	if len(team) == 0 {
		return 0
	}

	best := 0
	for _, member := range team {
		if v := member.Skills[model.LeadershipDimension]; v > best {
			best = v
		}
	}

	if best > 10 {
		best = 10
	}
	return float64(best)
}

// GuidanceScore rates the team's ability to support its junior members.
// Teams with no juniors score a neutral 5. Teams with juniors but no
// eligible mentor score 0 - they cannot safely carry their juniors. Teams
// with an eligible mentor earn a bonus scaled by the mentor's average skill,
// capped at 10.
func GuidanceScore(team []Worker, model SkillModel) float64 {
	needsGuidance := false
	for _, member := range team {
		if member.NeedsGuidance {
			needsGuidance = true
			break
		}
	}
	if !needsGuidance {
		return NeutralGuidanceScore
	}

	bestMentorAvg := -1.0
	for _, member := range team {
		if member.NeedsGuidance {
			continue
		}
		if avg := member.AvgSkill(model); avg >= MentorMinAvgSkill && avg > bestMentorAvg {
			bestMentorAvg = avg
		}
	}

	if bestMentorAvg < 0 {
		return 0
	}

	score := 5 + bestMentorAvg
	if score > 10 {
		score = 10
	}
	return score
}

// LeadCandidate picks the team member with the highest leadership rating.
// Ties keep the earliest member, and teams preserve roster order, so the
// pick is deterministic.
func LeadCandidate(team []Worker, model SkillModel) Worker {
	lead := team[0]
	best := lead.Skills[model.LeadershipDimension]
	for _, member := range team[1:] {
		if v := member.Skills[model.LeadershipDimension]; v > best {
			best = v
			lead = member
		}
	}
	return lead
}

// MentoringPairs matches each junior team member with the team's strongest
// eligible mentor. A junior with no eligible mentor still gets a pair, with
// a nil Mentor, so the coverage gap is surfaced rather than dropped.
func MentoringPairs(team []Worker, model SkillModel) []MentoringPair {
	var juniors []Worker
	for _, member := range team {
		if member.NeedsGuidance {
			juniors = append(juniors, member)
		}
	}
	if len(juniors) == 0 {
		return nil
	}

	var mentor *Worker
	bestAvg := -1.0
	for i := range team {
		if team[i].NeedsGuidance {
			continue
		}
		if avg := team[i].AvgSkill(model); avg >= PairingMentorMinAvgSkill && avg > bestAvg {
			bestAvg = avg
			mentor = &team[i]
		}
	}

	pairs := make([]MentoringPair, 0, len(juniors))
	for _, junior := range juniors {
		pairs = append(pairs, MentoringPair{Junior: junior, Mentor: mentor})
	}
	return pairs
}
