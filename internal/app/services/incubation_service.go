package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/validation"
)

// IncubationService handles incubation application intake and lifecycle
type IncubationService struct {
	incubationStore IncubationStore
	logger          zerolog.Logger
}

// NewIncubationService creates a new incubation service instance
func NewIncubationService(incubationStore IncubationStore, logger zerolog.Logger) *IncubationService {
	return &IncubationService{
		incubationStore: incubationStore,
		logger:          logger,
	}
}

// Submit validates an intake form and creates a pending application. A
// founder may only have one application in pending or reviewing at a time;
// resubmission is allowed once a previous application is resolved.
func (s *IncubationService) Submit(ctx context.Context, req dto.IncubationRequest) (*models.Incubation, error) {
	req.StartupName = strings.TrimSpace(req.StartupName)
	req.FounderName = strings.TrimSpace(req.FounderName)
	req.FounderEmail = strings.ToLower(strings.TrimSpace(req.FounderEmail))
	req.Phone = validation.Digits(req.Phone)

	if err := validation.Incubation(req); err != nil {
		return nil, err
	}

	live, err := s.incubationStore.HasLiveApplication(ctx, req.FounderEmail)
	if err != nil {
		return nil, err
	}
	if live {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Incubation{
		StartupName:        req.StartupName,
		FounderName:        req.FounderName,
		FounderEmail:       req.FounderEmail,
		Phone:              req.Phone,
		TeamSize:           req.TeamSize,
		ProblemStatement:   req.ProblemStatement,
		ProposedSolution:   req.ProposedSolution,
		UniqueSellingPoint: req.UniqueSellingPoint,
		CurrentStage:       req.CurrentStage,
		SupportNeeded:      req.SupportNeeded,
		AdditionalInfo:     req.AdditionalInfo,
		Status:             models.ApplicationPending,
	}

	if err := s.incubationStore.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("startup", application.StartupName).
		Str("founder", application.FounderEmail).
		Msg("Incubation application submitted")

	return application, nil
}

// List retrieves all applications for the admin dashboard
func (s *IncubationService) List(ctx context.Context) ([]*models.Incubation, error) {
	return s.incubationStore.GetAll(ctx)
}

// Get retrieves one application by ID
func (s *IncubationService) Get(ctx context.Context, id int64) (*models.Incubation, error) {
	return s.incubationStore.GetByID(ctx, id)
}

// Update applies an admin partial update of status and/or notes. Any
// status-to-status change is accepted as long as the new status is a known
// one; the pipeline ordering is not enforced here.
func (s *IncubationService) Update(ctx context.Context, id int64, req dto.UpdateIncubationRequest) (*models.Incubation, error) {
	if req.Status == nil && req.AdminNotes == nil {
		return nil, apperrors.NewBadRequestError("nothing to update")
	}

	if req.Status != nil && !validation.IsValidApplicationStatus(*req.Status) {
		return nil, apperrors.NewValidationError("status must be one of pending, reviewing, approved or rejected")
	}

	if err := s.incubationStore.Update(ctx, id, req.Status, req.AdminNotes); err != nil {
		return nil, err
	}

	return s.incubationStore.GetByID(ctx, id)
}

// Delete removes an application
func (s *IncubationService) Delete(ctx context.Context, id int64) error {
	if err := s.incubationStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationId", id).Msg("Incubation application deleted")
	return nil
}
