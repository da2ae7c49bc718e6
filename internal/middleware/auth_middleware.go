package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/auth"
)

// AdminCookieName is the HTTP-only cookie carrying the admin session token
const AdminCookieName = "hub_admin"

// AuthMiddleware guards admin-only endpoints
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// AdminRequired validates the admin session cookie before letting a
// request through. No operation is attempted on failure.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Admin authentication required")))
			return
		}

		if err := m.sessions.Validate(token); err != nil {
			code := dto.ErrorCodeUnauthorized
			message := "Admin authentication required"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredSession
				message = "Admin session expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(code, message)))
			return
		}

		c.Next()
	}
}
