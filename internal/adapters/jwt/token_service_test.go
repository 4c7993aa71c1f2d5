package token_adapter

import (
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key", time.Hour)
	require.NoError(t, err)

	claims := domain.Claims{
		UserID: uuid.New(),
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "5551234567",
		Role:   domain.RoleAdmin,
	}

	token, err := svc.GenerateToken(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims, *parsed)
}

func TestTokenServiceRejectsWrongKey(t *testing.T) {
	svc, err := NewTokenService("key-one", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenService("key-two", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken(domain.Claims{UserID: uuid.New(), Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := &TokenService{signingKey: []byte("test-signing-key"), ttl: -time.Minute}

	token, err := svc.GenerateToken(domain.Claims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService("test-signing-key", time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenServiceRequiresKey(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}
