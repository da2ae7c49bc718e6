package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/validation"
)

// StartupService handles startup portfolio operations
type StartupService struct {
	startupStore StartupStore
	images       ImageStore
	logger       zerolog.Logger
}

// NewStartupService creates a new startup service instance
func NewStartupService(startupStore StartupStore, images ImageStore, logger zerolog.Logger) *StartupService {
	return &StartupService{
		startupStore: startupStore,
		images:       images,
		logger:       logger,
	}
}

func normalizeStartup(req *dto.StartupRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.MobileNumber = validation.Digits(req.MobileNumber)
	req.IncubatedDate = strings.TrimSpace(req.IncubatedDate)
	req.Website = strings.TrimSpace(req.Website)
}

// CreateStartup validates and creates a new portfolio entry
func (s *StartupService) CreateStartup(ctx context.Context, req dto.StartupRequest) (*models.Startup, error) {
	normalizeStartup(&req)

	if err := validation.Startup(req); err != nil {
		return nil, err
	}

	startup := &models.Startup{
		Name:              req.Name,
		Slug:              req.Slug,
		Email:             req.Email,
		MobileNumber:      req.MobileNumber,
		IncubatedDate:     req.IncubatedDate,
		IncubationDetails: req.IncubationDetails,
		Status:            req.Status,
		Website:           req.Website,
		ImageURL:          req.Image,
		IsActive:          true,
	}

	if err := s.startupStore.Create(ctx, startup); err != nil {
		return nil, err
	}

	s.logger.Info().Str("startup", startup.Name).Str("slug", startup.Slug).Msg("Startup created")
	return startup, nil
}

// ListStartups retrieves startups honoring the public listing filters
func (s *StartupService) ListStartups(ctx context.Context, filter dto.StartupListFilter) ([]*models.Startup, error) {
	return s.startupStore.GetAll(ctx, filter)
}

// GetStartup retrieves a startup by ID
func (s *StartupService) GetStartup(ctx context.Context, id int64) (*models.Startup, error) {
	return s.startupStore.GetByID(ctx, id)
}

// UpdateStartup validates and updates an existing entry, preserving its
// visibility flag
func (s *StartupService) UpdateStartup(ctx context.Context, id int64, req dto.StartupRequest) (*models.Startup, error) {
	normalizeStartup(&req)

	if err := validation.Startup(req); err != nil {
		return nil, err
	}

	startup, err := s.startupStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	startup.Name = req.Name
	startup.Slug = req.Slug
	startup.Email = req.Email
	startup.MobileNumber = req.MobileNumber
	startup.IncubatedDate = req.IncubatedDate
	startup.IncubationDetails = req.IncubationDetails
	startup.Status = req.Status
	startup.Website = req.Website
	if req.Image != "" {
		startup.ImageURL = req.Image
	}

	if err := s.startupStore.Update(ctx, startup); err != nil {
		return nil, err
	}

	return startup, nil
}

// ToggleStartup flips a startup's public visibility
func (s *StartupService) ToggleStartup(ctx context.Context, id int64) (*models.Startup, error) {
	startup, err := s.startupStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.startupStore.SetActive(ctx, id, !startup.IsActive); err != nil {
		return nil, err
	}
	startup.IsActive = !startup.IsActive

	return startup, nil
}

// DeleteStartup removes a startup. Its stored image is deleted best-effort:
// an image cleanup failure never blocks the record's removal.
func (s *StartupService) DeleteStartup(ctx context.Context, id int64) error {
	startup, err := s.startupStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if startup.ImageURL != "" {
		if err := s.images.Delete(startup.ImageURL); err != nil {
			s.logger.Warn().Err(err).Str("image", startup.ImageURL).Msg("Failed to delete startup image")
		}
	}

	if err := s.startupStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("startup", startup.Name).Msg("Startup deleted")
	return nil
}
