package models

import "time"

// Startup status values
const (
	StartupIncubated    = "incubated"
	StartupNonIncubated = "non-incubated"
)

// Startup represents a portfolio entry, incubated or not.
// IsActive is a visibility filter for the public listing, not a deletion marker.
type Startup struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Slug              string    `json:"slug" db:"slug"`
	Email             string    `json:"email" db:"email"`
	MobileNumber      string    `json:"mobileNumber" db:"mobile_number"`
	IncubatedDate     string    `json:"incubatedDate" db:"incubated_date"`
	IncubationDetails string    `json:"incubationDetails,omitempty" db:"incubation_details"`
	Status            string    `json:"status" db:"status"`
	Website           string    `json:"website,omitempty" db:"website"`
	ImageURL          string    `json:"image,omitempty" db:"image_url"`
	IsActive          bool      `json:"isActive" db:"is_active"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}
