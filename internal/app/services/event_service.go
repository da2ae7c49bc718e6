package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/validation"
)

// Default team size bounds applied when the form leaves them empty
const (
	defaultMinTeamSize = 1
	defaultMaxTeamSize = 4
)

// EventService handles event-related operations
type EventService struct {
	eventStore EventStore
	logger     zerolog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(eventStore EventStore, logger zerolog.Logger) *EventService {
	return &EventService{
		eventStore: eventStore,
		logger:     logger,
	}
}

// CreateEvent validates and creates a new event
func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.Description = strings.TrimSpace(req.Description)
	req.Date = strings.TrimSpace(req.Date)

	if req.MinTeamSize == 0 && req.MaxTeamSize == 0 {
		req.MinTeamSize = defaultMinTeamSize
		req.MaxTeamSize = defaultMaxTeamSize
	}

	if err := validation.Event(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Date:        req.Date,
		MinTeamSize: req.MinTeamSize,
		MaxTeamSize: req.MaxTeamSize,
		IsActive:    true,
	}

	if err := s.eventStore.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Str("event", event.Name).Str("slug", event.Slug).Msg("Event created")
	return event, nil
}

// ListEvents retrieves all events, optionally only the active ones
func (s *EventService) ListEvents(ctx context.Context, activeOnly bool) ([]*models.Event, error) {
	return s.eventStore.GetAll(ctx, activeOnly)
}

// GetEventDetail retrieves an event with its registration counters
func (s *EventService) GetEventDetail(ctx context.Context, slug string) (*dto.EventDetailResponse, error) {
	event, err := s.eventStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	stats, err := s.eventStore.StatsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &dto.EventDetailResponse{
		Event: event,
		Stats: stats,
	}, nil
}

// DeleteEvent removes an event with all its registrations and participants
func (s *EventService) DeleteEvent(ctx context.Context, slug string) (*dto.DeleteEventResponse, error) {
	event, err := s.eventStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	deleted, err := s.eventStore.DeleteCascade(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("event", event.Name).
		Int64("deletedRegistrations", deleted).
		Msg("Event deleted with registrations")

	return &dto.DeleteEventResponse{
		EventName:            event.Name,
		DeletedRegistrations: deleted,
	}, nil
}

// Stats returns registration counters for every event
func (s *EventService) Stats(ctx context.Context) ([]*models.EventStats, error) {
	return s.eventStore.Stats(ctx)
}
