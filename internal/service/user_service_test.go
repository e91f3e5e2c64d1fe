package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/maclaude/learning-node-js-graphql-api/internal/apperr"
	"github.com/maclaude/learning-node-js-graphql-api/internal/auth"
	"github.com/maclaude/learning-node-js-graphql-api/internal/password"
	"github.com/maclaude/learning-node-js-graphql-api/internal/repo"
)

func newUserService() (*UserService, *repo.MemoryUserRepo, *auth.TokenService) {
	users := repo.NewMemoryUserRepo()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService("service-test-secret", time.Hour)
	return NewUserService(users, hasher, tokens), users, tokens
}

func appError(t *testing.T, err error) *apperr.Error {
	t.Helper()
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	return ae
}

func TestRegister(t *testing.T) {
	svc, users, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "jane@example.com", "Jane", "secret1")
	require.NoError(t, err)
	assert.False(t, u.ID.IsZero())
	assert.Equal(t, "jane@example.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	// Stored hash verifies against the original plaintext.
	stored, err := users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	ok, err := password.NewBcryptHasher(bcrypt.MinCost).Verify("secret1", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterInvalidInput(t *testing.T) {
	svc, users, _ := newUserService()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		messages []string
	}{
		{"bad email", "not-an-email", "secret1", []string{"E-Mail is invalid."}},
		{"short password", "jane@example.com", "abc", []string{"Password too short!"}},
		{"empty password", "jane@example.com", "", []string{"Password too short!"}},
		{"both invalid", "nope", "abc", []string{"E-Mail is invalid.", "Password too short!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, "Jane", tt.password)
			ae := appError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, ae.Status)
			assert.Equal(t, "Invalid input", ae.Message)
			require.Len(t, ae.Data, len(tt.messages))
			for i, msg := range tt.messages {
				assert.Equal(t, msg, ae.Data[i].Message)
			}
		})
	}

	// Nothing was persisted along the way.
	_, err := users.GetByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newUserService()
	ctx := context.Background()

	first, err := svc.Register(ctx, "jane@example.com", "Jane", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "jane@example.com", "Impostor", "secret2")
	ae := appError(t, err)
	assert.Equal(t, http.StatusConflict, ae.Status)
	assert.Equal(t, "User already exists", ae.Message)

	// The original account is untouched.
	stored, err := users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Jane", stored.Name)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "jane@example.com", "Jane", "secret1")
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret1")
		ae := appError(t, err)
		assert.Equal(t, http.StatusUnauthorized, ae.Status)
		assert.Equal(t, "User not found", ae.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "jane@example.com", "wrong-password")
		ae := appError(t, err)
		assert.Equal(t, http.StatusUnauthorized, ae.Status)
		assert.Equal(t, "Password is incorrect", ae.Message)
	})

	t.Run("success issues a token for the user", func(t *testing.T) {
		token, userID, err := svc.Login(ctx, "jane@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, u.ID.Hex(), userID)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID.Hex(), claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
	})
}
