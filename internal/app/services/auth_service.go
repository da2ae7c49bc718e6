package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/auth"
)

// AuthService checks the shared admin password and issues session tokens.
// The configured password is hashed once at startup so the plain value is
// not kept in memory.
type AuthService struct {
	passwordHash string
	sessions     *auth.SessionService
	logger       zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminPassword string, sessions *auth.SessionService, logger zerolog.Logger) (*AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		passwordHash: hash,
		sessions:     sessions,
		logger:       logger,
	}, nil
}

// Login verifies the admin password and returns a signed session token
// with its expiry
func (s *AuthService) Login(password string) (string, time.Time, error) {
	if !auth.CheckPassword(s.passwordHash, password) {
		s.logger.Warn().Msg("Failed admin login attempt")
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.sessions.Issue()
	if err != nil {
		return "", time.Time{}, err
	}

	s.logger.Info().Time("expiresAt", expiresAt).Msg("Admin logged in")
	return token, expiresAt, nil
}
