package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/middleware"
)

// IncubationController handles incubation application endpoints
type IncubationController struct {
	incubationService *services.IncubationService
}

// NewIncubationController creates a new IncubationController
func NewIncubationController(incubationService *services.IncubationService) *IncubationController {
	return &IncubationController{
		incubationService: incubationService,
	}
}

// Submit receives a public incubation application
// @Summary Submit incubation application
// @Description Creates a pending application; one live application per founder email
// @Tags incubation
// @Accept json
// @Produce json
// @Param request body dto.IncubationRequest true "Application form"
// @Success 201 {object} dto.APIResponse{data=models.Incubation}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Application already in progress"
// @Router /incubation [post]
func (c *IncubationController) Submit(ctx *gin.Context) {
	var req dto.IncubationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data").WithDetails(err.Error())))
		return
	}

	application, err := c.incubationService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(application, "Application submitted"))
}

// List lists all applications
// @Summary List incubation applications
// @Tags incubation
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Incubation}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /incubation [get]
func (c *IncubationController) List(ctx *gin.Context) {
	applications, err := c.incubationService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// Get retrieves one application
// @Summary Application detail
// @Tags incubation
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Incubation}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /incubation/{id} [get]
func (c *IncubationController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	application, err := c.incubationService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}

// Update changes an application's status and/or admin notes
// @Summary Update application
// @Tags incubation
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateIncubationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Incubation}
// @Failure 400 {object} dto.APIResponse "Invalid update"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /incubation/{id} [put]
func (c *IncubationController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateIncubationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update data").WithDetails(err.Error())))
		return
	}

	application, err := c.incubationService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(application, "Application updated"))
}

// Delete removes an application
// @Summary Delete application
// @Tags incubation
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /incubation/{id} [delete]
func (c *IncubationController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.incubationService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Application deleted"))
}

func (c *IncubationController) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Application ID must be a valid number")))
		return 0, false
	}
	return id, true
}
