package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/security"
)

func TestTokenManager(t *testing.T) {
	tokens := security.NewTokenManager("unit-test-secret-0123456789abcdef")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := tokens.GenerateToken("user-1", "Alice Admin", "alice@test.com", "admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "Alice Admin", claims.Name)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "alice@test.com", claims.Email)
		assert.Equal(t, "user-1", claims.Subject)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := tokens.GenerateToken("user-1", "Alice Admin", "alice@test.com", "admin")
		require.NoError(t, err)

		other := security.NewTokenManager("a-completely-different-secret-value")
		_, err = other.ValidateToken(token)
		assert.Equal(t, security.ErrInvalidToken, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.ValidateToken("not.a.jwt")
		assert.Equal(t, security.ErrInvalidToken, err)
	})
}
