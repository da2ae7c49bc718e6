package models

import "time"

// Incubation application status values. The admin endpoint accepts any
// status-to-status change, the pipeline ordering is a UI convention.
const (
	ApplicationPending   = "pending"
	ApplicationReviewing = "reviewing"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
)

// Startup stage values for incubation applications
const (
	StageIdea          = "idea"
	StageMVP           = "mvp"
	StageEarlyTraction = "early-traction"
)

// Support options a founder can request
const (
	SupportMentorship = "mentorship"
	SupportTechnical  = "technical"
	SupportFunding    = "funding"
	SupportCoworking  = "coworking"
)

// Incubation represents a prospective startup's intake application
type Incubation struct {
	ID                 int64     `json:"id" db:"id"`
	StartupName        string    `json:"startupName" db:"startup_name"`
	FounderName        string    `json:"founderName" db:"founder_name"`
	FounderEmail       string    `json:"founderEmail" db:"founder_email"`
	Phone              string    `json:"phone" db:"phone"`
	TeamSize           int       `json:"teamSize" db:"team_size"`
	ProblemStatement   string    `json:"problemStatement" db:"problem_statement"`
	ProposedSolution   string    `json:"proposedSolution" db:"proposed_solution"`
	UniqueSellingPoint string    `json:"uniqueSellingPoint" db:"unique_selling_point"`
	CurrentStage       string    `json:"currentStage" db:"current_stage"`
	SupportNeeded      []string  `json:"supportNeeded" db:"support_needed"`
	AdditionalInfo     string    `json:"additionalInfo,omitempty" db:"additional_info"`
	Status             string    `json:"status" db:"status"`
	AdminNotes         string    `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// IsResolved reports whether the application reached a terminal status
func (i *Incubation) IsResolved() bool {
	return i.Status == ApplicationApproved || i.Status == ApplicationRejected
}
