package models

import "time"

// Gender values accepted for participants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Participant represents one person attached to a registration.
// Exactly one participant per registration has IsLeader set.
type Participant struct {
	ID             int64     `json:"id" db:"id"`
	RegistrationID int64     `json:"registrationId" db:"registration_id"`
	Name           string    `json:"name" db:"name"`
	Gender         string    `json:"gender" db:"gender"`
	RollNumber     string    `json:"rollNumber" db:"roll_number"`
	ContactNumber  string    `json:"contactNumber" db:"contact_number"`
	Email          string    `json:"email" db:"email"`
	IsLeader       bool      `json:"isLeader" db:"is_leader"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
