package db

// Job lifecycle statuses
const (
	JobStatusDraft      = "draft"
	JobStatusEstimated  = "estimated"
	JobStatusDispatched = "dispatched"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Assignment selection methods
const (
	SelectionAIRecommended = "ai_recommended"
	SelectionManual        = "manual"
	SelectionAIModified    = "ai_modified"
)

// Worker represents a roster record
type Worker struct {
	ID             string
	Name           string
	EmploymentType string
	HasVehicle     bool
	NeedsGuidance  bool

	// Skills maps dimension name to a 1-10 rating, stored as JSONB
	Skills map[string]int
}

// JobType represents a job type template record
type JobType struct {
	ID                 string
	Name               string
	BaseTimeHours      float64
	RequiredSkillTotal float64
	PrimarySkills      []string
	MinPersonnel       int
	MaxPersonnel       int
}

// Job represents a job record
type Job struct {
	ID              string
	JobTypeID       string
	Title           string
	Status          string
	LocationName    string
	LocationAddress string
	Latitude        *float64
	Longitude       *float64
	EstimatedHours  float64
	PreferredDate   string
	Notes           string
	CreatedAt       string
	UpdatedAt       string
}

// Assignment represents a confirmed team assignment record
type Assignment struct {
	ID                 string
	JobID              string
	MemberIDs          []string
	LeadMemberID       string
	TeamSkillTotal     float64
	IsStretch          bool
	StretchMultiplier  float64
	VehicleArrangement string
	SelectionMethod    string
	CreatedAt          string
}
