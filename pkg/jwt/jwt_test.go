package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "jo@example.com", "Jo Smith", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "Jo Smith", claims.Name)
	assert.Equal(t, "manager", claims.Role)

	// 30-day lifetime.
	require.NotNil(t, claims.ExpiresAt)
	lifetime := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, lifetime, 29*24*time.Hour)
	assert.LessOrEqual(t, lifetime, 30*24*time.Hour)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "jo@example.com", "Jo", "staff")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
