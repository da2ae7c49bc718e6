package dto

import "github.com/emre/innohub/internal/app/models"

// CreateEventRequest is the admin form for creating an event.
// Team size bounds default to 1 and 4 when omitted.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Date        string `json:"date"`
	MinTeamSize int    `json:"minTeamSize"`
	MaxTeamSize int    `json:"maxTeamSize"`
}

// EventDetailResponse is the public event page payload: the event itself
// plus its registration counters
type EventDetailResponse struct {
	Event *models.Event      `json:"event"`
	Stats *models.EventStats `json:"stats"`
}
