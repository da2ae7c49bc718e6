package dto

// IncubationRequest is the public intake form for the incubation program
type IncubationRequest struct {
	StartupName        string   `json:"startupName"`
	FounderName        string   `json:"founderName"`
	FounderEmail       string   `json:"founderEmail"`
	Phone              string   `json:"phone"`
	TeamSize           int      `json:"teamSize"`
	ProblemStatement   string   `json:"problemStatement"`
	ProposedSolution   string   `json:"proposedSolution"`
	UniqueSellingPoint string   `json:"uniqueSellingPoint"`
	CurrentStage       string   `json:"currentStage"`
	SupportNeeded      []string `json:"supportNeeded"`
	AdditionalInfo     string   `json:"additionalInfo"`
}

// UpdateIncubationRequest is the admin partial update: either field may be
// omitted to leave it unchanged
type UpdateIncubationRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}
