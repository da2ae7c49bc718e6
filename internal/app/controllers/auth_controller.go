package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/middleware"
)

// AuthController handles admin login and logout
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies the admin password and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin password"
// @Success 200 {object} dto.APIResponse "Logged in"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Password is required")))
		return
	}

	token, expiresAt, err := c.authService.Login(req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminCookieName, token, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Logged in"))
}

// Logout clears the admin session cookie
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth [delete]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminCookieName, "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Logged out"))
}
