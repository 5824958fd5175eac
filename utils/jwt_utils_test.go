package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-management/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    7,
		Email: "seller@example.com",
		Role:  models.RoleSeller,
	}

	token, err := GenerateToken("test-secret", user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "seller@example.com", claims.Email)
	assert.Equal(t, models.RoleSeller, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.com", Role: models.RoleCustomer}

	token, err := GenerateToken("secret-one", user)
	require.NoError(t, err)

	_, err = ParseToken("secret-two", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
