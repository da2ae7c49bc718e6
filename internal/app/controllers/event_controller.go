package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/middleware"
)

// EventController handles event-related endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents lists events
// @Summary List events
// @Description Lists all events, optionally only active ones
// @Tags events
// @Produce json
// @Param active query bool false "Only active events"
// @Success 200 {object} dto.APIResponse{data=[]models.Event}
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	events, err := c.eventService.ListEvents(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// CreateEvent creates a new event
// @Summary Create an event
// @Description Creates a new event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event}
// @Failure 400 {object} dto.APIResponse "Invalid event data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 409 {object} dto.APIResponse "Event already exists"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data").WithDetails(err.Error())))
		return
	}

	event, err := c.eventService.CreateEvent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(event, "Event created"))
}

// GetEvent retrieves one event with registration stats
// @Summary Event detail
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse}
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /events/{slug} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	detail, err := c.eventService.GetEventDetail(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// DeleteEvent removes an event and all its registrations
// @Summary Delete an event
// @Description Deletes an event with every registration and participant attached to it (admin only)
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteEventResponse}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /events/{slug} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	result, err := c.eventService.DeleteEvent(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(result, "Event deleted"))
}

// Stats reports per-event registration counts
// @Summary Registration stats
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.EventStats}
// @Router /admin/stats [get]
func (c *EventController) Stats(ctx *gin.Context) {
	stats, err := c.eventService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
