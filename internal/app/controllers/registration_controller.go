package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/middleware"
)

// RegistrationController handles registration endpoints
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Register submits a registration for an event
// @Summary Submit registration
// @Description Creates a registration with its participants for the event identified by slug
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationSummary}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 409 {object} dto.APIResponse "Duplicate registration"
// @Router /registrations/{eventSlug} [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").WithDetails(err.Error())))
		return
	}

	summary, err := c.registrationService.Register(ctx, ctx.Param("eventSlug"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(summary, "Registration successful"))
}

// ListByEvent lists an event's registrations with participants
// @Summary List registrations
// @Description Lists all registrations of one event for the admin dashboard
// @Tags registrations
// @Produce json
// @Param event query string true "Event slug"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /admin/registrations [get]
func (c *RegistrationController) ListByEvent(ctx *gin.Context) {
	eventSlug := ctx.Query("event")
	if eventSlug == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "event query parameter is required")))
		return
	}

	registrations, err := c.registrationService.ListByEvent(ctx, eventSlug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}

// DeleteRegistration removes a registration and its participants
// @Summary Delete registration
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /admin/registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Registration ID must be a valid number")))
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Registration deleted"))
}

// RemoveParticipant removes one team member from a registration
// @Summary Remove team member
// @Description Removes a non-leader participant as long as the team keeps at least 2 members
// @Tags registrations
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 400 {object} dto.APIResponse "Leader or team floor rejection"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Participant not found"
// @Router /admin/participants/{id} [delete]
func (c *RegistrationController) RemoveParticipant(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Participant ID must be a valid number")))
		return
	}

	registration, err := c.registrationService.RemoveParticipant(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(registration, "Participant removed"))
}
