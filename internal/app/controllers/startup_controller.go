package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/middleware"
)

// StartupController handles startup portfolio endpoints
type StartupController struct {
	startupService *services.StartupService
}

// NewStartupController creates a new StartupController
func NewStartupController(startupService *services.StartupService) *StartupController {
	return &StartupController{
		startupService: startupService,
	}
}

// ListStartups lists portfolio startups
// @Summary List startups
// @Description Lists startups, optionally filtered by visibility and incubation status
// @Tags startups
// @Produce json
// @Param active query bool false "Only active startups"
// @Param status query string false "Incubation status filter" Enums(incubated, non-incubated)
// @Success 200 {object} dto.APIResponse{data=[]models.Startup}
// @Router /startups [get]
func (c *StartupController) ListStartups(ctx *gin.Context) {
	filter := dto.StartupListFilter{
		ActiveOnly: ctx.Query("active") == "true",
		Status:     ctx.Query("status"),
	}

	startups, err := c.startupService.ListStartups(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startups))
}

// CreateStartup creates a new portfolio entry
// @Summary Create a startup
// @Tags startups
// @Accept json
// @Produce json
// @Param request body dto.StartupRequest true "Startup information"
// @Success 201 {object} dto.APIResponse{data=models.Startup}
// @Failure 400 {object} dto.APIResponse "Invalid startup data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 409 {object} dto.APIResponse "Slug already taken"
// @Router /admin/startups [post]
func (c *StartupController) CreateStartup(ctx *gin.Context) {
	var req dto.StartupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid startup data").WithDetails(err.Error())))
		return
	}

	startup, err := c.startupService.CreateStartup(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(startup, "Startup created"))
}

// GetStartup retrieves one startup
// @Summary Startup detail
// @Tags startups
// @Produce json
// @Param id path int true "Startup ID"
// @Success 200 {object} dto.APIResponse{data=models.Startup}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Startup not found"
// @Router /admin/startups/{id} [get]
func (c *StartupController) GetStartup(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	startup, err := c.startupService.GetStartup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startup))
}

// UpdateStartup replaces a startup's details
// @Summary Update a startup
// @Tags startups
// @Accept json
// @Produce json
// @Param id path int true "Startup ID"
// @Param request body dto.StartupRequest true "Startup information"
// @Success 200 {object} dto.APIResponse{data=models.Startup}
// @Failure 400 {object} dto.APIResponse "Invalid startup data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Startup not found"
// @Router /admin/startups/{id} [put]
func (c *StartupController) UpdateStartup(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.StartupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid startup data").WithDetails(err.Error())))
		return
	}

	startup, err := c.startupService.UpdateStartup(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(startup, "Startup updated"))
}

// ToggleStartup flips a startup's public visibility
// @Summary Toggle startup visibility
// @Tags startups
// @Produce json
// @Param id path int true "Startup ID"
// @Success 200 {object} dto.APIResponse{data=models.Startup}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Startup not found"
// @Router /admin/startups/{id}/toggle [patch]
func (c *StartupController) ToggleStartup(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	startup, err := c.startupService.ToggleStartup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(startup, "Startup visibility updated"))
}

// DeleteStartup removes a startup and its stored image
// @Summary Delete a startup
// @Tags startups
// @Produce json
// @Param id path int true "Startup ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Startup not found"
// @Router /admin/startups/{id} [delete]
func (c *StartupController) DeleteStartup(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.startupService.DeleteStartup(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Startup deleted"))
}

func (c *StartupController) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Startup ID must be a valid number")))
		return 0, false
	}
	return id, true
}
