package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	t.Run("registers user and issues token", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		tokenSvc := newFakeTokenService()
		uc := NewRegisterUserUseCase(userRepo, tokenSvc)

		user, token, err := uc.Execute(context.Background(), "Jane Doe", "jane@example.com", "5551234567", "s3cretpass")
		require.NoError(t, err)

		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.NotEmpty(t, token)

		claims, err := tokenSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(userRepo, newFakeTokenService())

		_, _, err := uc.Execute(context.Background(), "Jane", "jane@example.com", "", "s3cretpass")
		require.NoError(t, err)

		_, _, err = uc.Execute(context.Background(), "Other Jane", "jane@example.com", "", "anotherpass")
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
	})

	t.Run("short password and missing fields", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), newFakeTokenService())

		_, _, err := uc.Execute(context.Background(), "", "", "", "short")

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"Name is required",
			"Email is required",
			"Password must be at least 8 characters long",
		}, vErr.Details)
	})
}

func TestLoginUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenSvc := newFakeTokenService()

	registered, _, err := NewRegisterUserUseCase(userRepo, tokenSvc).
		Execute(context.Background(), "Jane Doe", "jane@example.com", "", "s3cretpass")
	require.NoError(t, err)

	uc := NewLoginUserUseCase(userRepo, tokenSvc)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := uc.Execute(context.Background(), "jane@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Execute(context.Background(), "jane@example.com", "wrongpass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, _, err := uc.Execute(context.Background(), "nobody@example.com", "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
