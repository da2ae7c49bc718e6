package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

type StartupServiceSuite struct {
	suite.Suite
	store   *fakeStartupStore
	images  *fakeImageStore
	service *StartupService
	ctx     context.Context
}

func TestStartupServiceSuite(t *testing.T) {
	suite.Run(t, new(StartupServiceSuite))
}

func (s *StartupServiceSuite) SetupTest() {
	s.store = &fakeStartupStore{}
	s.images = &fakeImageStore{}
	s.service = NewStartupService(s.store, s.images, zerolog.Nop())
	s.ctx = context.Background()
}

func (s *StartupServiceSuite) validRequest() dto.StartupRequest {
	return dto.StartupRequest{
		Name:          "GreenCharge",
		Slug:          "GreenCharge",
		Email:         "Hello@GreenCharge.in",
		MobileNumber:  "+91 98765 43210",
		IncubatedDate: "2024-06-01",
		Status:        "incubated",
		Website:       "https://greencharge.in",
		Image:         "/uploads/greencharge.png",
	}
}

func (s *StartupServiceSuite) TestCreateStartup() {
	startup, err := s.service.CreateStartup(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Equal("greencharge", startup.Slug, "slug is lowercased")
	s.Equal("hello@greencharge.in", startup.Email)
	s.Equal("9876543210", startup.MobileNumber)
	s.True(startup.IsActive, "new entries are visible")

	s.Run("duplicate slug conflicts", func() {
		req := s.validRequest()
		req.Name = "GreenCharge Clone"
		_, err := s.service.CreateStartup(s.ctx, req)
		s.Require().ErrorIs(err, apperrors.ErrStartupAlreadyExists)
	})

	s.Run("invalid status rejected", func() {
		req := s.validRequest()
		req.Slug = "other-slug"
		req.Status = "graduated"
		_, err := s.service.CreateStartup(s.ctx, req)
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})
}

func (s *StartupServiceSuite) TestListStartups() {
	first, err := s.service.CreateStartup(s.ctx, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.Name = "PaperTrail"
	req.Slug = "papertrail"
	req.Status = "non-incubated"
	_, err = s.service.CreateStartup(s.ctx, req)
	s.Require().NoError(err)

	_, err = s.service.ToggleStartup(s.ctx, first.ID)
	s.Require().NoError(err)

	all, err := s.service.ListStartups(s.ctx, dto.StartupListFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	active, err := s.service.ListStartups(s.ctx, dto.StartupListFilter{ActiveOnly: true})
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("papertrail", active[0].Slug)

	incubated, err := s.service.ListStartups(s.ctx, dto.StartupListFilter{Status: "incubated"})
	s.Require().NoError(err)
	s.Require().Len(incubated, 1)
	s.Equal("greencharge", incubated[0].Slug)
}

func (s *StartupServiceSuite) TestUpdateStartup() {
	startup, err := s.service.CreateStartup(s.ctx, s.validRequest())
	s.Require().NoError(err)

	_, err = s.service.ToggleStartup(s.ctx, startup.ID)
	s.Require().NoError(err)

	req := s.validRequest()
	req.Name = "GreenCharge Labs"
	req.Image = ""
	updated, err := s.service.UpdateStartup(s.ctx, startup.ID, req)
	s.Require().NoError(err)

	s.Equal("GreenCharge Labs", updated.Name)
	s.Equal("/uploads/greencharge.png", updated.ImageURL, "empty image keeps the old one")
	s.False(updated.IsActive, "visibility flag survives the update")

	s.Run("unknown id", func() {
		_, err := s.service.UpdateStartup(s.ctx, 9999, s.validRequest())
		s.Require().ErrorIs(err, apperrors.ErrStartupNotFound)
	})
}

func (s *StartupServiceSuite) TestToggleStartup() {
	startup, err := s.service.CreateStartup(s.ctx, s.validRequest())
	s.Require().NoError(err)

	toggled, err := s.service.ToggleStartup(s.ctx, startup.ID)
	s.Require().NoError(err)
	s.False(toggled.IsActive)

	toggled, err = s.service.ToggleStartup(s.ctx, startup.ID)
	s.Require().NoError(err)
	s.True(toggled.IsActive)
}

func (s *StartupServiceSuite) TestDeleteStartup() {
	startup, err := s.service.CreateStartup(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteStartup(s.ctx, startup.ID))

	_, err = s.store.GetByID(s.ctx, startup.ID)
	s.Require().ErrorIs(err, apperrors.ErrStartupNotFound)

	s.Require().Len(s.images.deleted, 1)
	s.Equal("/uploads/greencharge.png", s.images.deleted[0])
}
