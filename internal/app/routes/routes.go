package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/controllers"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	startupController *controllers.StartupController,
	incubationController *controllers.IncubationController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	adminRequired := authMiddleware.AdminRequired()

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("", authController.Login)
		auth.DELETE("", authController.Logout)
	}

	// --- Event routes ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:slug", eventController.GetEvent)

		events.POST("", adminRequired, eventController.CreateEvent)
		events.DELETE("/:slug", adminRequired, eventController.DeleteEvent)
	}

	// --- Registration routes ---
	// Public form submission keyed by event slug
	v1.POST("/registrations/:eventSlug", registrationController.Register)

	// --- Startup routes ---
	startups := v1.Group("/startups")
	{
		startups.GET("", startupController.ListStartups)
		startups.POST("", adminRequired, startupController.CreateStartup)
	}

	// --- Incubation routes ---
	incubation := v1.Group("/incubation")
	{
		incubation.POST("", incubationController.Submit)

		incubation.GET("", adminRequired, incubationController.List)
		incubation.GET("/:id", adminRequired, incubationController.Get)
		incubation.PUT("/:id", adminRequired, incubationController.Update)
		incubation.DELETE("/:id", adminRequired, incubationController.Delete)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	{
		// Per-event registration counts stay public for the landing page
		admin.GET("/stats", eventController.Stats)

		adminProtected := admin.Group("")
		adminProtected.Use(adminRequired)
		{
			adminProtected.GET("/registrations", registrationController.ListByEvent)
			adminProtected.DELETE("/registrations/:id", registrationController.DeleteRegistration)
			adminProtected.DELETE("/participants/:id", registrationController.RemoveParticipant)

			adminProtected.GET("/startups/:id", startupController.GetStartup)
			adminProtected.PUT("/startups/:id", startupController.UpdateStartup)
			adminProtected.PATCH("/startups/:id/toggle", startupController.ToggleStartup)
			adminProtected.DELETE("/startups/:id", startupController.DeleteStartup)
		}
	}

	// Image upload (admin only)
	v1.POST("/upload", adminRequired, uploadController.Upload)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
