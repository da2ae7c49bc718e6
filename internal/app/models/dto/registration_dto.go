package dto

// Participation types accepted on a registration form
const (
	ParticipationSolo = "solo"
	ParticipationTeam = "team"
)

// ParticipantForm carries one person's details from the registration form
type ParticipantForm struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	RollNumber    string `json:"rollNumber"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
}

// RegistrationRequest is the submitted registration form. TeamName and
// TeamMembers must only be present for team participation.
type RegistrationRequest struct {
	ParticipationType string            `json:"participationType"`
	TeamName          string            `json:"teamName"`
	Leader            ParticipantForm   `json:"leader"`
	TeamMembers       []ParticipantForm `json:"teamMembers"`
}

// RegistrationSummary is returned after a successful registration
type RegistrationSummary struct {
	RegistrationID    int64  `json:"registrationId"`
	EventName         string `json:"eventName"`
	IsTeam            bool   `json:"isTeam"`
	TeamName          string `json:"teamName,omitempty"`
	TotalParticipants int    `json:"totalParticipants"`
}

// DeleteEventResponse reports how much a cascading event delete removed
type DeleteEventResponse struct {
	EventName            string `json:"eventName"`
	DeletedRegistrations int64  `json:"deletedRegistrations"`
}
