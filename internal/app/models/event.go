package models

import "time"

// Event represents a registrable activity hosted by the hub
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"event_date"`
	MinTeamSize int       `json:"minTeamSize" db:"min_team_size"`
	MaxTeamSize int       `json:"maxTeamSize" db:"max_team_size"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// EventStats carries per-event registration counters for the dashboard
type EventStats struct {
	EventName         string `json:"eventName"`
	EventSlug         string `json:"eventSlug"`
	RegistrationCount int64  `json:"registrationCount"`
	ParticipantCount  int64  `json:"participantCount"`
}
