package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidateToken struct {
	claims map[string]*domain.Claims
}

func (f *fakeValidateToken) Execute(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims, ok := f.claims[tokenString]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func TestAuthenticateMiddleware(t *testing.T) {
	adminClaims := &domain.Claims{UserID: uuid.New(), Name: "Admin", Role: domain.RoleAdmin}
	am := NewAuthMiddleware(&fakeValidateToken{claims: map[string]*domain.Claims{
		"good-token": adminClaims,
	}})

	var seenClaims *domain.Claims
	handler := am.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenClaims = contextkeys.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/properties", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Authorization header required"}`, rec.Body.String())
	})

	t.Run("not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/properties", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/properties", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token puts claims into context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/properties", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seenClaims)
		assert.Equal(t, adminClaims.UserID, seenClaims.UserID)
	})
}

func TestRequireRole(t *testing.T) {
	am := NewAuthMiddleware(&fakeValidateToken{})
	handler := am.RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no claims in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/blog", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/blog", nil)
		ctx := contextkeys.ContextWithClaims(req.Context(), &domain.Claims{Role: domain.RoleUser})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("required role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/blog", nil)
		ctx := contextkeys.ContextWithClaims(req.Context(), &domain.Claims{Role: domain.RoleAdmin})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
