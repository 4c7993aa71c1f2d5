package rest

import (
	"errors"
	"net/http/httptest"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil error is not handled", nil, 0},
		{"property not found", domain.ErrPropertyNotFound, 404},
		{"blog post not found", domain.ErrBlogPostNotFound, 404},
		{"posting not found", domain.ErrPostingNotFound, 404},
		{"slug conflict", domain.ErrSlugInUse, 409},
		{"email conflict", domain.ErrEmailInUse, 409},
		{"invalid credentials", domain.ErrInvalidCredentials, 401},
		{"invalid token", domain.ErrTokenInvalid, 401},
		{"unknown error", errors.New("boom"), 500},
		{"wrapped sentinel", errors.Join(errors.New("context"), domain.ErrPropertyNotFound), 404},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handled := HandleDomainError(rec, tc.err)

			if tc.err == nil {
				assert.False(t, handled)
				return
			}
			assert.True(t, handled)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandleDomainErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	err := domain.NewValidationError([]string{"Name is required", "Message is required"})

	assert.True(t, HandleDomainError(rec, err))
	assert.Equal(t, 422, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":["Name is required","Message is required"]}`, rec.Body.String())
}

func TestGetLimitAndOffset(t *testing.T) {
	req := httptest.NewRequest("GET", "/properties?limit=24&offset=48", nil)

	limit, err := GetLimitOrDefault(req, 12)
	assert.NoError(t, err)
	assert.Equal(t, 24, limit)

	offset, err := GetOffsetOrDefault(req)
	assert.NoError(t, err)
	assert.Equal(t, 48, offset)

	req = httptest.NewRequest("GET", "/properties", nil)
	limit, err = GetLimitOrDefault(req, 12)
	assert.NoError(t, err)
	assert.Equal(t, 12, limit)

	req = httptest.NewRequest("GET", "/properties?limit=abc", nil)
	_, err = GetLimitOrDefault(req, 12)
	assert.Error(t, err)
}
