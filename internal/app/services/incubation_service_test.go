package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

type IncubationServiceSuite struct {
	suite.Suite
	store   *fakeIncubationStore
	service *IncubationService
	ctx     context.Context
}

func TestIncubationServiceSuite(t *testing.T) {
	suite.Run(t, new(IncubationServiceSuite))
}

func (s *IncubationServiceSuite) SetupTest() {
	s.store = &fakeIncubationStore{}
	s.service = NewIncubationService(s.store, zerolog.Nop())
	s.ctx = context.Background()
}

func (s *IncubationServiceSuite) validRequest() dto.IncubationRequest {
	return dto.IncubationRequest{
		StartupName:        "GreenCharge",
		FounderName:        "Asha Verma",
		FounderEmail:       "Asha@GreenCharge.in",
		Phone:              "98765 43210",
		TeamSize:           3,
		ProblemStatement:   "Campus EV charging is scarce.",
		ProposedSolution:   "Shared solar charging pods.",
		UniqueSellingPoint: "Modular pods that install in a day.",
		CurrentStage:       "mvp",
		SupportNeeded:      []string{"mentorship", "funding"},
	}
}

func (s *IncubationServiceSuite) TestSubmit() {
	application, err := s.service.Submit(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Equal(models.ApplicationPending, application.Status)
	s.Equal("asha@greencharge.in", application.FounderEmail)
	s.Equal("9876543210", application.Phone)
}

func (s *IncubationServiceSuite) TestDuplicatePendingGuard() {
	first, err := s.service.Submit(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Run("second live application rejected", func() {
		_, err := s.service.Submit(s.ctx, s.validRequest())
		s.Require().ErrorIs(err, apperrors.ErrDuplicateApplication)
	})

	s.Run("guard matches email case-insensitively", func() {
		req := s.validRequest()
		req.FounderEmail = "ASHA@greencharge.IN"
		_, err := s.service.Submit(s.ctx, req)
		s.Require().ErrorIs(err, apperrors.ErrDuplicateApplication)
	})

	s.Run("still blocked while reviewing", func() {
		status := models.ApplicationReviewing
		_, err := s.service.Update(s.ctx, first.ID, dto.UpdateIncubationRequest{Status: &status})
		s.Require().NoError(err)

		_, err = s.service.Submit(s.ctx, s.validRequest())
		s.Require().ErrorIs(err, apperrors.ErrDuplicateApplication)
	})

	s.Run("resubmission allowed once resolved", func() {
		status := models.ApplicationApproved
		_, err := s.service.Update(s.ctx, first.ID, dto.UpdateIncubationRequest{Status: &status})
		s.Require().NoError(err)

		second, err := s.service.Submit(s.ctx, s.validRequest())
		s.Require().NoError(err)
		s.Equal(models.ApplicationPending, second.Status)
	})
}

func (s *IncubationServiceSuite) TestUpdate() {
	application, err := s.service.Submit(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Run("empty update rejected", func() {
		_, err := s.service.Update(s.ctx, application.ID, dto.UpdateIncubationRequest{})
		s.Require().ErrorIs(err, apperrors.ErrBadRequest)
	})

	s.Run("unknown status rejected", func() {
		status := "archived"
		_, err := s.service.Update(s.ctx, application.ID, dto.UpdateIncubationRequest{Status: &status})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("notes-only update keeps status", func() {
		notes := "Promising, invite for a demo."
		updated, err := s.service.Update(s.ctx, application.ID, dto.UpdateIncubationRequest{AdminNotes: &notes})
		s.Require().NoError(err)
		s.Equal(models.ApplicationPending, updated.Status)
		s.Equal(notes, updated.AdminNotes)
	})

	s.Run("any known status transition is accepted", func() {
		rejected := models.ApplicationRejected
		updated, err := s.service.Update(s.ctx, application.ID, dto.UpdateIncubationRequest{Status: &rejected})
		s.Require().NoError(err)
		s.Equal(models.ApplicationRejected, updated.Status)

		// Straight back to pending, no pipeline ordering enforced
		pending := models.ApplicationPending
		updated, err = s.service.Update(s.ctx, application.ID, dto.UpdateIncubationRequest{Status: &pending})
		s.Require().NoError(err)
		s.Equal(models.ApplicationPending, updated.Status)
	})

	s.Run("unknown id", func() {
		status := models.ApplicationApproved
		_, err := s.service.Update(s.ctx, 9999, dto.UpdateIncubationRequest{Status: &status})
		s.Require().ErrorIs(err, apperrors.ErrApplicationNotFound)
	})
}

func (s *IncubationServiceSuite) TestDelete() {
	application, err := s.service.Submit(s.ctx, s.validRequest())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, application.ID))
	s.Require().ErrorIs(s.service.Delete(s.ctx, application.ID), apperrors.ErrApplicationNotFound)
}

func (s *IncubationServiceSuite) TestList() {
	_, err := s.service.Submit(s.ctx, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.FounderEmail = "other@founder.in"
	_, err = s.service.Submit(s.ctx, req)
	s.Require().NoError(err)

	applications, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(applications, 2)
}
