package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFindProperties struct {
	lastFilters domain.FindPropertiesFilters
}

func (f *fakeFindProperties) Execute(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
	f.lastFilters = filters
	return &domain.PaginatedProperties{Items: []domain.Property{}}, nil
}

func TestFindPropertiesHandler(t *testing.T) {
	t.Run("public catalog always filters by active status", func(t *testing.T) {
		find := &fakeFindProperties{}
		handler := NewPropertyHandler(find, nil, nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/properties?status=inactive", nil)
		rec := httptest.NewRecorder()

		handler.FindProperties(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, find.lastFilters.Status)
		assert.Equal(t, domain.PropertyStatusActive, *find.lastFilters.Status)
	})

	t.Run("admin catalog passes the requested status through", func(t *testing.T) {
		find := &fakeFindProperties{}
		handler := NewPropertyHandler(find, nil, nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/properties?status=inactive", nil)
		rec := httptest.NewRecorder()

		handler.AdminFindProperties(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, find.lastFilters.Status)
		assert.Equal(t, domain.PropertyStatusInactive, *find.lastFilters.Status)
	})

	t.Run("admin catalog without status sees every listing", func(t *testing.T) {
		find := &fakeFindProperties{}
		handler := NewPropertyHandler(find, nil, nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/properties", nil)
		rec := httptest.NewRecorder()

		handler.AdminFindProperties(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, find.lastFilters.Status)
		assert.Empty(t, *find.lastFilters.Status)
	})
}
