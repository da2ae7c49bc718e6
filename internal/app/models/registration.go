package models

import "time"

// Registration represents one signup (solo or team) for one event.
// EventName is denormalized from the event for display and stats,
// the authoritative link is EventID.
type Registration struct {
	ID                int64     `json:"id" db:"id"`
	EventID           int64     `json:"eventId" db:"event_id"`
	EventName         string    `json:"eventName" db:"event_name"`
	IsTeam            bool      `json:"isTeam" db:"is_team"`
	TeamName          string    `json:"teamName,omitempty" db:"team_name"`
	LeaderEmail       string    `json:"leaderEmail" db:"leader_email"`
	TotalParticipants int       `json:"totalParticipants" db:"total_participants"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Participants []*Participant `json:"participants,omitempty"`
}
