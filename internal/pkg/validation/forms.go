package validation

import (
	"fmt"
	"strings"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

// Form validation is stateless and side-effect free. Each check fails fast
// on the first violated rule and returns an error whose message is surfaced
// verbatim to the client.

// Participant validates one participant's form fields. The label (for
// example "Leader" or "Team member 2") is embedded in every message so the
// client can point at the offending person.
func Participant(p dto.ParticipantForm, label string) error {
	name := strings.TrimSpace(p.Name)
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: name must be between %d and %d characters", label, NameMinLength, NameMaxLength))
	}

	if !isValidGender(p.Gender) {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: gender must be Male, Female or Other", label))
	}

	if strings.TrimSpace(p.RollNumber) == "" {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: roll number is required", label))
	}

	if len(Digits(p.ContactNumber)) != ContactNumberLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: contact number must be exactly %d digits", label, ContactNumberLength))
	}

	if !IsValidEmail(p.Email) {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s: a valid email address is required", label))
	}

	return nil
}

// Registration validates a full registration form: the leader always, and
// for teams the team name, every member, the member count and email
// uniqueness across the whole party.
func Registration(req dto.RegistrationRequest) error {
	if req.ParticipationType != dto.ParticipationSolo && req.ParticipationType != dto.ParticipationTeam {
		return apperrors.NewValidationError("participation type must be either solo or team")
	}

	if err := Participant(req.Leader, "Leader"); err != nil {
		return err
	}

	if req.ParticipationType == dto.ParticipationSolo {
		if len(req.TeamMembers) != 0 {
			return apperrors.NewValidationError("an individual registration cannot include team members")
		}
		return nil
	}

	teamName := strings.TrimSpace(req.TeamName)
	if len(teamName) < TeamNameMinLength || len(teamName) > TeamNameMaxLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("team name must be between %d and %d characters", TeamNameMinLength, TeamNameMaxLength))
	}

	if len(req.TeamMembers) < MinTeamMembers || len(req.TeamMembers) > MaxTeamMembers {
		return apperrors.NewValidationError(
			fmt.Sprintf("a team needs between %d and %d members besides the leader", MinTeamMembers, MaxTeamMembers))
	}

	for i, member := range req.TeamMembers {
		if err := Participant(member, fmt.Sprintf("Team member %d", i+1)); err != nil {
			return err
		}
	}

	// Emails must be unique across leader and members, case-insensitively
	seen := map[string]bool{
		strings.ToLower(strings.TrimSpace(req.Leader.Email)): true,
	}
	for _, member := range req.TeamMembers {
		email := strings.ToLower(strings.TrimSpace(member.Email))
		if seen[email] {
			return apperrors.NewValidationError("every participant must use a different email address")
		}
		seen[email] = true
	}

	return nil
}

// Event validates the admin event creation form
func Event(req dto.CreateEventRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("event name is required")
	}

	if !IsValidSlug(req.Slug) {
		return apperrors.NewValidationError("slug may only contain lowercase letters, digits and hyphens")
	}

	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("event description is required")
	}

	if !IsRealDate(req.Date) {
		return apperrors.NewValidationError("event date must be a valid date in YYYY-MM-DD format")
	}

	// Team size bounds are optional on the form, defaults apply when absent
	if req.MinTeamSize != 0 || req.MaxTeamSize != 0 {
		if req.MinTeamSize < TeamSizeMin || req.MinTeamSize > TeamSizeMax ||
			req.MaxTeamSize < TeamSizeMin || req.MaxTeamSize > TeamSizeMax {
			return apperrors.NewValidationError(
				fmt.Sprintf("team size bounds must be between %d and %d", TeamSizeMin, TeamSizeMax))
		}
		if req.MinTeamSize > req.MaxTeamSize {
			return apperrors.NewValidationError("minimum team size cannot exceed maximum team size")
		}
	}

	return nil
}

// Startup validates the admin startup form
func Startup(req dto.StartupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("startup name is required")
	}

	if !IsValidSlug(req.Slug) {
		return apperrors.NewValidationError("slug may only contain lowercase letters, digits and hyphens")
	}

	if !IsValidEmail(req.Email) {
		return apperrors.NewValidationError("a valid contact email is required")
	}

	if len(Digits(req.MobileNumber)) != ContactNumberLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("mobile number must be exactly %d digits", ContactNumberLength))
	}

	if !IsRealDate(req.IncubatedDate) {
		return apperrors.NewValidationError("incubated date must be a valid date in YYYY-MM-DD format")
	}

	if req.Status != models.StartupIncubated && req.Status != models.StartupNonIncubated {
		return apperrors.NewValidationError("status must be either incubated or non-incubated")
	}

	return nil
}

// Incubation validates the public incubation intake form
func Incubation(req dto.IncubationRequest) error {
	if strings.TrimSpace(req.StartupName) == "" {
		return apperrors.NewValidationError("startup name is required")
	}

	if strings.TrimSpace(req.FounderName) == "" {
		return apperrors.NewValidationError("founder name is required")
	}

	if !IsValidEmail(req.FounderEmail) {
		return apperrors.NewValidationError("a valid founder email address is required")
	}

	if len(Digits(req.Phone)) != ContactNumberLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("phone number must be exactly %d digits", ContactNumberLength))
	}

	if req.TeamSize < TeamSizeMin || req.TeamSize > TeamSizeMax {
		return apperrors.NewValidationError(
			fmt.Sprintf("team size must be between %d and %d", TeamSizeMin, TeamSizeMax))
	}

	if strings.TrimSpace(req.ProblemStatement) == "" {
		return apperrors.NewValidationError("problem statement is required")
	}

	if strings.TrimSpace(req.ProposedSolution) == "" {
		return apperrors.NewValidationError("proposed solution is required")
	}

	if strings.TrimSpace(req.UniqueSellingPoint) == "" {
		return apperrors.NewValidationError("unique selling point is required")
	}

	if !isValidStage(req.CurrentStage) {
		return apperrors.NewValidationError("current stage must be one of idea, mvp or early-traction")
	}

	if len(req.SupportNeeded) == 0 {
		return apperrors.NewValidationError("at least one kind of support must be selected")
	}
	for _, support := range req.SupportNeeded {
		if !isValidSupport(support) {
			return apperrors.NewValidationError(
				fmt.Sprintf("unknown support option %q", support))
		}
	}

	return nil
}

// IsValidApplicationStatus checks the incubation status enum
func IsValidApplicationStatus(status string) bool {
	switch status {
	case models.ApplicationPending, models.ApplicationReviewing,
		models.ApplicationApproved, models.ApplicationRejected:
		return true
	}
	return false
}

func isValidGender(gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "female", "other":
		return true
	}
	return false
}

func isValidStage(stage string) bool {
	switch stage {
	case models.StageIdea, models.StageMVP, models.StageEarlyTraction:
		return true
	}
	return false
}

func isValidSupport(support string) bool {
	switch support {
	case models.SupportMentorship, models.SupportTechnical,
		models.SupportFunding, models.SupportCoworking:
		return true
	}
	return false
}
