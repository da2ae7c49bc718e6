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

type RegistrationServiceSuite struct {
	suite.Suite
	events       *fakeEventStore
	regs         *fakeRegistrationStore
	participants *fakeParticipantStore
	service      *RegistrationService
	ctx          context.Context
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceSuite))
}

func (s *RegistrationServiceSuite) SetupTest() {
	s.events, s.regs, s.participants = newFakeStores()
	s.service = NewRegistrationService(s.events, s.regs, s.participants, zerolog.Nop())
	s.ctx = context.Background()

	err := s.events.Create(s.ctx, &models.Event{
		Name:        "Tech Fest",
		Slug:        "tech-fest",
		Description: "Annual tech fest",
		Date:        "2026-11-20",
		MinTeamSize: 1,
		MaxTeamSize: 4,
		IsActive:    true,
	})
	s.Require().NoError(err)
}

func (s *RegistrationServiceSuite) leaderForm() dto.ParticipantForm {
	return dto.ParticipantForm{
		Name:          "Asha Verma",
		Gender:        "female",
		RollNumber:    "21cs042",
		ContactNumber: "98765-43210",
		Email:         "Asha@College.edu",
	}
}

func (s *RegistrationServiceSuite) memberForm(email string) dto.ParticipantForm {
	return dto.ParticipantForm{
		Name:          "Rohan Iyer",
		Gender:        "Male",
		RollNumber:    "21CS043",
		ContactNumber: "9876500000",
		Email:         email,
	}
}

func (s *RegistrationServiceSuite) TestSoloRegistration() {
	summary, err := s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: "Solo",
		Leader:            s.leaderForm(),
	})
	s.Require().NoError(err)

	s.Equal(1, summary.TotalParticipants)
	s.False(summary.IsTeam)
	s.Equal("Tech Fest", summary.EventName)

	participants, err := s.participants.GetByRegistrationID(s.ctx, summary.RegistrationID)
	s.Require().NoError(err)
	s.Require().Len(participants, 1)

	leader := participants[0]
	s.True(leader.IsLeader)
	s.Equal("asha@college.edu", leader.Email)
	s.Equal("21CS042", leader.RollNumber)
	s.Equal("9876543210", leader.ContactNumber)
	s.Equal(models.GenderFemale, leader.Gender)
}

func (s *RegistrationServiceSuite) TestTeamRegistration() {
	summary, err := s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationTeam,
		TeamName:          "Hack Pack",
		Leader:            s.leaderForm(),
		TeamMembers: []dto.ParticipantForm{
			s.memberForm("m1@college.edu"),
			s.memberForm("m2@college.edu"),
		},
	})
	s.Require().NoError(err)

	s.Equal(3, summary.TotalParticipants)
	s.True(summary.IsTeam)
	s.Equal("Hack Pack", summary.TeamName)

	participants, err := s.participants.GetByRegistrationID(s.ctx, summary.RegistrationID)
	s.Require().NoError(err)
	s.Require().Len(participants, 3)

	leaders := 0
	for _, p := range participants {
		if p.IsLeader {
			leaders++
		}
	}
	s.Equal(1, leaders)
	s.True(participants[0].IsLeader, "leader is returned first")
}

func (s *RegistrationServiceSuite) TestDuplicateLeaderEmailConflicts() {
	_, err := s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationSolo,
		Leader:            s.leaderForm(),
	})
	s.Require().NoError(err)

	// Same leader email, different casing and different participation type
	_, err = s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationTeam,
		TeamName:          "Second Try",
		Leader:            s.leaderForm(),
		TeamMembers:       []dto.ParticipantForm{s.memberForm("m1@college.edu")},
	})
	s.Require().ErrorIs(err, apperrors.ErrDuplicateRegistration)
}

func (s *RegistrationServiceSuite) TestUnknownEvent() {
	_, err := s.service.Register(s.ctx, "no-such-event", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationSolo,
		Leader:            s.leaderForm(),
	})
	s.Require().ErrorIs(err, apperrors.ErrEventNotFound)
}

func (s *RegistrationServiceSuite) TestInactiveEvent() {
	err := s.events.Create(s.ctx, &models.Event{
		Name: "Old Fest", Slug: "old-fest", Date: "2020-01-01",
		MinTeamSize: 1, MaxTeamSize: 4, IsActive: false,
	})
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "old-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationSolo,
		Leader:            s.leaderForm(),
	})
	s.Require().ErrorIs(err, apperrors.ErrEventInactive)
}

func (s *RegistrationServiceSuite) TestEventTeamBounds() {
	err := s.events.Create(s.ctx, &models.Event{
		Name: "Pairs Only", Slug: "pairs-only", Date: "2026-12-01",
		MinTeamSize: 2, MaxTeamSize: 2, IsActive: true,
	})
	s.Require().NoError(err)

	s.Run("solo rejected when the event requires teams", func() {
		_, err := s.service.Register(s.ctx, "pairs-only", dto.RegistrationRequest{
			ParticipationType: dto.ParticipationSolo,
			Leader:            s.leaderForm(),
		})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("oversized team rejected", func() {
		_, err := s.service.Register(s.ctx, "pairs-only", dto.RegistrationRequest{
			ParticipationType: dto.ParticipationTeam,
			TeamName:          "Trio",
			Leader:            s.leaderForm(),
			TeamMembers: []dto.ParticipantForm{
				s.memberForm("m1@college.edu"),
				s.memberForm("m2@college.edu"),
			},
		})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("exact-size team accepted", func() {
		summary, err := s.service.Register(s.ctx, "pairs-only", dto.RegistrationRequest{
			ParticipationType: dto.ParticipationTeam,
			TeamName:          "Duo",
			Leader:            s.leaderForm(),
			TeamMembers:       []dto.ParticipantForm{s.memberForm("m1@college.edu")},
		})
		s.Require().NoError(err)
		s.Equal(2, summary.TotalParticipants)
	})
}

func (s *RegistrationServiceSuite) registerTeam(extraEmails ...string) *dto.RegistrationSummary {
	members := make([]dto.ParticipantForm, 0, len(extraEmails))
	for _, email := range extraEmails {
		members = append(members, s.memberForm(email))
	}
	summary, err := s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationTeam,
		TeamName:          "Hack Pack",
		Leader:            s.leaderForm(),
		TeamMembers:       members,
	})
	s.Require().NoError(err)
	return summary
}

func (s *RegistrationServiceSuite) TestRemoveParticipant() {
	summary := s.registerTeam("m1@college.edu", "m2@college.edu")
	participants, err := s.participants.GetByRegistrationID(s.ctx, summary.RegistrationID)
	s.Require().NoError(err)
	s.Require().Len(participants, 3)

	s.Run("leader cannot be removed", func() {
		_, err := s.service.RemoveParticipant(s.ctx, participants[0].ID)
		s.Require().ErrorIs(err, apperrors.ErrLeaderRemoval)
	})

	s.Run("member removal decrements the counter", func() {
		registration, err := s.service.RemoveParticipant(s.ctx, participants[1].ID)
		s.Require().NoError(err)
		s.Equal(2, registration.TotalParticipants)

		remaining, err := s.participants.GetByRegistrationID(s.ctx, summary.RegistrationID)
		s.Require().NoError(err)
		s.Len(remaining, 2)
	})

	s.Run("removal below two members is rejected", func() {
		_, err := s.service.RemoveParticipant(s.ctx, participants[2].ID)
		s.Require().ErrorIs(err, apperrors.ErrTeamFloor)
	})

	s.Run("unknown participant", func() {
		_, err := s.service.RemoveParticipant(s.ctx, 9999)
		s.Require().ErrorIs(err, apperrors.ErrParticipantNotFound)
	})
}

func (s *RegistrationServiceSuite) TestRemoveFromSoloRegistration() {
	summary, err := s.service.Register(s.ctx, "tech-fest", dto.RegistrationRequest{
		ParticipationType: dto.ParticipationSolo,
		Leader:            s.memberForm("solo@college.edu"),
	})
	s.Require().NoError(err)

	// A solo registration only has its leader; fabricate a stray non-leader
	// row to exercise the solo guard directly.
	s.participants.nextID++
	stray := &models.Participant{
		ID:             s.participants.nextID,
		RegistrationID: summary.RegistrationID,
		Name:           "Stray Row",
		IsLeader:       false,
	}
	s.participants.participants = append(s.participants.participants, stray)

	_, err = s.service.RemoveParticipant(s.ctx, stray.ID)
	s.Require().ErrorIs(err, apperrors.ErrSoloRemoval)
}

func (s *RegistrationServiceSuite) TestDeleteRegistration() {
	summary := s.registerTeam("m1@college.edu")

	s.Require().NoError(s.service.DeleteRegistration(s.ctx, summary.RegistrationID))

	_, err := s.regs.GetByID(s.ctx, summary.RegistrationID)
	s.Require().ErrorIs(err, apperrors.ErrRegistrationNotFound)

	orphans, err := s.participants.GetByRegistrationID(s.ctx, summary.RegistrationID)
	s.Require().NoError(err)
	s.Empty(orphans)

	s.Run("second delete is a not-found", func() {
		err := s.service.DeleteRegistration(s.ctx, summary.RegistrationID)
		s.Require().ErrorIs(err, apperrors.ErrRegistrationNotFound)
	})
}

func (s *RegistrationServiceSuite) TestListByEvent() {
	s.registerTeam("m1@college.edu")

	registrations, err := s.service.ListByEvent(s.ctx, "tech-fest")
	s.Require().NoError(err)
	s.Require().Len(registrations, 1)
	s.Len(registrations[0].Participants, 2)

	_, err = s.service.ListByEvent(s.ctx, "missing")
	s.Require().ErrorIs(err, apperrors.ErrEventNotFound)
}
