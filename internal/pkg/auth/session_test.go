package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	sessions := NewSessionService(SessionConfig{
		SecretKey:  "test-secret",
		Expiration: time.Hour,
		Issuer:     "innohub-test",
	})

	t.Run("issued token validates", func(t *testing.T) {
		token, expiresAt, err := sessions.Issue()
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
		assert.NoError(t, sessions.Validate(token))
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		assert.ErrorIs(t, sessions.Validate("not-a-jwt"), ErrInvalidToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other := NewSessionService(SessionConfig{
			SecretKey:  "different-secret",
			Expiration: time.Hour,
			Issuer:     "innohub-test",
		})
		token, _, err := other.Issue()
		require.NoError(t, err)
		assert.ErrorIs(t, sessions.Validate(token), ErrInvalidToken)
	})

	t.Run("expired token reports expiry", func(t *testing.T) {
		shortLived := NewSessionService(SessionConfig{
			SecretKey:  "test-secret",
			Expiration: -time.Minute,
			Issuer:     "innohub-test",
		})
		token, _, err := shortLived.Issue()
		require.NoError(t, err)
		assert.ErrorIs(t, sessions.Validate(token), ErrExpiredToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "letmein"))
	assert.False(t, CheckPassword(hash, ""))
}
