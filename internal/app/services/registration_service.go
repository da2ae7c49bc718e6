package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/validation"
)

// RegistrationService handles event registrations and their participants
type RegistrationService struct {
	eventStore        EventStore
	registrationStore RegistrationStore
	participantStore  ParticipantStore
	logger            zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	eventStore EventStore,
	registrationStore RegistrationStore,
	participantStore ParticipantStore,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		eventStore:        eventStore,
		registrationStore: registrationStore,
		participantStore:  participantStore,
		logger:            logger,
	}
}

// Register validates a submitted form and creates one registration with its
// participants, leader first. Creation is transactional in the store, so a
// failed participant insert leaves no dangling registration.
func (s *RegistrationService) Register(ctx context.Context, eventSlug string, req dto.RegistrationRequest) (*dto.RegistrationSummary, error) {
	normalizeRegistration(&req)

	if err := validation.Registration(req); err != nil {
		return nil, err
	}

	event, err := s.eventStore.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, apperrors.ErrEventInactive
	}

	isTeam := req.ParticipationType == dto.ParticipationTeam
	total := 1
	if isTeam {
		total = 1 + len(req.TeamMembers)
	}

	// The event's own team-size bounds apply on top of the form rules
	if isTeam {
		if total < event.MinTeamSize || total > event.MaxTeamSize {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"%s accepts teams of %d to %d participants", event.Name, event.MinTeamSize, event.MaxTeamSize))
		}
	} else if event.MinTeamSize > 1 {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"%s requires team participation", event.Name))
	}

	registration := &models.Registration{
		EventID:           event.ID,
		EventName:         event.Name,
		IsTeam:            isTeam,
		LeaderEmail:       req.Leader.Email,
		TotalParticipants: total,
	}
	if isTeam {
		registration.TeamName = req.TeamName
	}

	participants := make([]*models.Participant, 0, total)
	participants = append(participants, participantFromForm(req.Leader, true))
	for _, member := range req.TeamMembers {
		participants = append(participants, participantFromForm(member, false))
	}

	if err := s.registrationStore.Create(ctx, registration, participants); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("registrationId", registration.ID).
		Str("event", event.Name).
		Bool("isTeam", isTeam).
		Int("participants", total).
		Msg("Registration created")

	return &dto.RegistrationSummary{
		RegistrationID:    registration.ID,
		EventName:         registration.EventName,
		IsTeam:            registration.IsTeam,
		TeamName:          registration.TeamName,
		TotalParticipants: registration.TotalParticipants,
	}, nil
}

// ListByEvent returns an event's registrations with participants attached,
// for the admin dashboard
func (s *RegistrationService) ListByEvent(ctx context.Context, eventSlug string) ([]*models.Registration, error) {
	event, err := s.eventStore.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}

	registrations, err := s.registrationStore.GetByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}

	for _, registration := range registrations {
		participants, err := s.participantStore.GetByRegistrationID(ctx, registration.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving participants: %w", err)
		}
		registration.Participants = participants
	}

	return registrations, nil
}

// DeleteRegistration removes a registration together with its participants
func (s *RegistrationService) DeleteRegistration(ctx context.Context, id int64) error {
	if _, err := s.registrationStore.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.registrationStore.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("registrationId", id).Msg("Registration deleted")
	return nil
}

// RemoveParticipant removes a single team member. The leader can never be
// removed, and a team may not shrink below 2 members; either case requires
// deleting the whole registration instead.
func (s *RegistrationService) RemoveParticipant(ctx context.Context, id int64) (*models.Registration, error) {
	participant, err := s.participantStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if participant.IsLeader {
		return nil, apperrors.ErrLeaderRemoval
	}

	registration, err := s.registrationStore.GetByID(ctx, participant.RegistrationID)
	if err != nil {
		return nil, err
	}

	if !registration.IsTeam {
		return nil, apperrors.ErrSoloRemoval
	}
	if registration.TotalParticipants <= 2 {
		return nil, apperrors.ErrTeamFloor
	}

	if err := s.participantStore.Remove(ctx, participant.ID, registration.ID); err != nil {
		return nil, err
	}

	registration.TotalParticipants--

	s.logger.Info().
		Int64("participantId", id).
		Int64("registrationId", registration.ID).
		Int("remaining", registration.TotalParticipants).
		Msg("Participant removed")

	return registration, nil
}

// participantFromForm builds a participant record from normalized form data
func participantFromForm(form dto.ParticipantForm, isLeader bool) *models.Participant {
	return &models.Participant{
		Name:          form.Name,
		Gender:        form.Gender,
		RollNumber:    form.RollNumber,
		ContactNumber: form.ContactNumber,
		Email:         form.Email,
		IsLeader:      isLeader,
	}
}

// normalizeRegistration trims every field, lowercases emails, uppercases
// roll numbers and canonicalizes gender spelling before validation
func normalizeRegistration(req *dto.RegistrationRequest) {
	req.ParticipationType = strings.ToLower(strings.TrimSpace(req.ParticipationType))
	req.TeamName = strings.TrimSpace(req.TeamName)
	normalizeParticipant(&req.Leader)
	for i := range req.TeamMembers {
		normalizeParticipant(&req.TeamMembers[i])
	}
}

func normalizeParticipant(p *dto.ParticipantForm) {
	p.Name = strings.TrimSpace(p.Name)
	p.RollNumber = strings.ToUpper(strings.TrimSpace(p.RollNumber))
	p.ContactNumber = validation.Digits(p.ContactNumber)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	switch strings.ToLower(strings.TrimSpace(p.Gender)) {
	case "male":
		p.Gender = models.GenderMale
	case "female":
		p.Gender = models.GenderFemale
	case "other":
		p.Gender = models.GenderOther
	default:
		p.Gender = strings.TrimSpace(p.Gender)
	}
}
