package dispatch

// SkillDimension names one axis of a worker's skill profile
type SkillDimension string

// Standard skill dimensions used when no custom model is configured
const (
	DimElectrical      SkillDimension = "electrical"
	DimTechnical       SkillDimension = "technical"
	DimOnSiteJudgment  SkillDimension = "on_site_judgment"
	DimSafety          SkillDimension = "safety_management"
	DimQuality         SkillDimension = "quality_accuracy"
	DimCommunication   SkillDimension = "communication"
	DimLeadership      SkillDimension = "leadership"
	DimAdaptability    SkillDimension = "adaptability"
)

// SkillModel is the explicit skill-dimension configuration for an engine run.
// The dimension list defines which skills contribute to scoring, and
// LeadershipDimension identifies the dimension used for lead selection.
type SkillModel struct {
	Dimensions          []SkillDimension
	LeadershipDimension SkillDimension
}

// DefaultSkillModel returns the standard eight-dimension skill model
func DefaultSkillModel() SkillModel {
	return SkillModel{
		Dimensions: []SkillDimension{
			DimElectrical,
			DimTechnical,
			DimOnSiteJudgment,
			DimSafety,
			DimQuality,
			DimCommunication,
			DimLeadership,
			DimAdaptability,
		},
		LeadershipDimension: DimLeadership,
	}
}

// Worker represents a field-service worker on the roster
type Worker struct {
	ID             string
	Name           string
	EmploymentType string // "staff" or "contractor"
	HasVehicle     bool
	NeedsGuidance  bool

	// Skills maps dimension name to a 1-10 rating. Dimensions absent from
	// the map count as 0.
	Skills map[SkillDimension]int
}

// SkillValue returns the worker's rating on the given dimension (0 if unrated)
func (w Worker) SkillValue(dim SkillDimension) int {
	return w.Skills[dim]
}

// AvgSkill returns the worker's mean rating across the model's dimensions
func (w Worker) AvgSkill(model SkillModel) float64 {
	if len(model.Dimensions) == 0 {
		return 0
	}
	total := 0
	for _, dim := range model.Dimensions {
		total += w.Skills[dim]
	}
	return float64(total) / float64(len(model.Dimensions))
}

// JobRequest describes the job a team is being assembled for
type JobRequest struct {
	ID string

	// RequiredSkillTotal is the per-head skill requirement. The team-level
	// requirement scales with team size.
	RequiredSkillTotal float64

	// PrimarySkills are the dimensions weighted highest for this job
	PrimarySkills []SkillDimension

	MinPersonnel int
	MaxPersonnel int

	// Latitude/Longitude are the resolved job site coordinates, if known
	Latitude  *float64
	Longitude *float64

	EstimatedHours float64
}

// PolicyConfig carries the dispatch policy settings for an engine run
type PolicyConfig struct {
	// VehicleCapacity is the seat count of one standard crew vehicle
	VehicleCapacity int

	// SoloDriverID identifies the worker who always travels alone in their
	// own vehicle (empty if no such worker exists)
	SoloDriverID string

	// StretchEnabled allows under-skilled teams within the multiplier bound
	StretchEnabled bool

	// StretchMultiplier is the relaxation factor applied when stretch mode
	// is enabled (e.g. 1.2 accepts teams up to 20% below requirement)
	StretchMultiplier float64

	// MaxStretchMultiplier caps StretchMultiplier when set (> 0)
	MaxStretchMultiplier float64

	// BaseLatitude/BaseLongitude locate the depot for travel scoring
	BaseLatitude  *float64
	BaseLongitude *float64
}

// VehicleArrangement classifies how a feasible team travels to site
type VehicleArrangement string

const (
	// ArrangementSingleVehicle is one crew vehicle carrying the whole team
	ArrangementSingleVehicle VehicleArrangement = "single_vehicle"

	// ArrangementMultiVehicle is two crew vehicles
	ArrangementMultiVehicle VehicleArrangement = "multi_vehicle"

	// ArrangementSoloVehicle is the solo driver travelling alone
	ArrangementSoloVehicle VehicleArrangement = "solo_vehicle"

	// ArrangementMixed is one crew vehicle plus the solo driver's vehicle
	ArrangementMixed VehicleArrangement = "mixed"

	// ArrangementInvalid marks a team that cannot be transported
	ArrangementInvalid VehicleArrangement = "invalid"
)

// ScoreBreakdown holds the per-factor scores behind a composite score
type ScoreBreakdown struct {
	Skill        float64
	Availability float64
	Travel       float64
	Leadership   float64
	Guidance     float64
}

// MentoringPair assigns a junior worker to a mentor within the same team.
// Mentor is nil when no eligible mentor exists in the team, which signals
// an unresolved coverage gap the caller must decide how to handle.
type MentoringPair struct {
	Junior Worker
	Mentor *Worker
}

// Recommendation is one ranked team proposal for a job
type Recommendation struct {
	Team []Worker

	// Score is the weighted composite on a 0-10 scale
	Score     float64
	Breakdown ScoreBreakdown

	IsStretch    bool
	StretchRatio float64

	// StretchMultiplier is the relaxation multiplier the evaluation
	// actually applied (1.0 when stretch mode is off)
	StretchMultiplier float64

	TeamSkillTotal     float64
	RequiredSkillTotal float64

	VehicleArrangement VehicleArrangement
	VehicleDetail      string

	LeadCandidate  Worker
	MentoringPairs []MentoringPair

	// Rank is 1-based and dense across the returned slice
	Rank int
}
