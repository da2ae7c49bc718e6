package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *auth.SessionService) {
	t.Helper()

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "test-secret",
		Expiration: time.Hour,
		Issuer:     "innohub-test",
	})

	service, err := NewAuthService("hunter2", sessions, zerolog.Nop())
	require.NoError(t, err)
	return service, sessions
}

func TestAuthServiceLogin(t *testing.T) {
	service, sessions := newTestAuthService(t)

	t.Run("correct password issues a valid session", func(t *testing.T) {
		token, expiresAt, err := service.Login("hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, expiresAt.After(time.Now()))
		assert.NoError(t, sessions.Validate(token))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := service.Login("letmein")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, _, err := service.Login("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
