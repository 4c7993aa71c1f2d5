package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitViewing struct {
	execute func(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error)
}

func (f *fakeSubmitViewing) Execute(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error) {
	return f.execute(ctx, request)
}

type fakeGetSlots struct{}

func (f *fakeGetSlots) Execute(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error) {
	grid := domain.BuildMonthGrid(year, month, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	return &grid, nil
}

func TestSubmitViewingRequestHandler(t *testing.T) {
	t.Run("returns 201 with saved request", func(t *testing.T) {
		propertyID := uuid.New()
		handler := NewLeadHandler(&fakeSubmitViewing{
			execute: func(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error) {
				request.ID = uuid.New()
				request.CreatedAt = time.Now().UTC()
				return request, nil
			},
		}, nil, nil, nil)

		body := `{"propertyId":"` + propertyID.String() + `","firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"5551234567"}`
		req := httptest.NewRequest(http.MethodPost, "/viewing-requests", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SubmitViewingRequest(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), propertyID.String())
	})

	t.Run("returns 422 with violation details", func(t *testing.T) {
		handler := NewLeadHandler(&fakeSubmitViewing{
			execute: func(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error) {
				return nil, domain.NewValidationError([]string{"First name is required"})
			},
		}, nil, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/viewing-requests", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.SubmitViewingRequest(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Validation failed","details":["First name is required"]}`, rec.Body.String())
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		handler := NewLeadHandler(&fakeSubmitViewing{
			execute: func(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error) {
				t.Fatal("use case must not be called")
				return nil, nil
			},
		}, nil, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/viewing-requests", strings.NewReader(`{broken`))
		rec := httptest.NewRecorder()

		handler.SubmitViewingRequest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetViewingSlotsHandler(t *testing.T) {
	handler := NewLeadHandler(nil, nil, &fakeGetSlots{}, nil)

	t.Run("returns grid for explicit month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/viewing-slots?year=2026&month=3", nil)
		rec := httptest.NewRecorder()

		handler.GetViewingSlots(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cells"`)
		assert.Contains(t, rec.Body.String(), `"month":3`)
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/viewing-slots?year=2026&month=13", nil)
		rec := httptest.NewRecorder()

		handler.GetViewingSlots(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects non-numeric year", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/viewing-slots?year=abc", nil)
		rec := httptest.NewRecorder()

		handler.GetViewingSlots(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPrefillHandler(t *testing.T) {
	t.Run("splits session name and locks known fields", func(t *testing.T) {
		handler := NewLeadHandler(nil, nil, nil, nil)

		claims := &domain.Claims{
			UserID: uuid.New(),
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Role:   domain.RoleUser,
		}
		req := httptest.NewRequest(http.MethodGet, "/viewing-requests/prefill", nil)
		req = req.WithContext(contextkeys.ContextWithClaims(req.Context(), claims))
		rec := httptest.NewRecorder()

		handler.GetPrefill(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
			"phone":     "",
			"readOnly":  ["firstName", "lastName", "email"]
		}`, rec.Body.String())
	})

	t.Run("locks phone when the session has one", func(t *testing.T) {
		handler := NewLeadHandler(nil, nil, nil, nil)

		claims := &domain.Claims{
			UserID: uuid.New(),
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Phone:  "15551234567",
			Role:   domain.RoleUser,
		}
		req := httptest.NewRequest(http.MethodGet, "/viewing-requests/prefill", nil)
		req = req.WithContext(contextkeys.ContextWithClaims(req.Context(), claims))
		rec := httptest.NewRecorder()

		handler.GetPrefill(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"phone":"15551234567"`)
		assert.Contains(t, rec.Body.String(), `"readOnly":["firstName","lastName","email","phone"]`)
	})

	t.Run("rejects anonymous request", func(t *testing.T) {
		handler := NewLeadHandler(nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/viewing-requests/prefill", nil)
		rec := httptest.NewRecorder()

		handler.GetPrefill(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
