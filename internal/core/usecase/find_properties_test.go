package usecase

import (
	"context"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPropertiesCaching(t *testing.T) {
	calls := 0
	repo := &fakePropertyRepo{
		findWithFiltersFunc: func(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
			calls++
			return &domain.PaginatedProperties{
				Items: []domain.Property{{Title: "Listing one"}},
				Pagination: domain.PaginationInfo{
					TotalItems: 1, TotalPages: 1, CurrentPage: 1, ItemsPerPage: 12,
				},
			}, nil
		},
	}
	cache := newFakeCache()
	uc := NewFindPropertiesUseCase(repo, cache, time.Minute)

	filters := domain.FindPropertiesFilters{Limit: 12}

	first, err := uc.Execute(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	second, err := uc.Execute(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second call must be served from cache")
	assert.Equal(t, first.Pagination, second.Pagination)
	assert.Equal(t, first.Items[0].Title, second.Items[0].Title)

	// Другие фильтры - другой ключ кэша
	city := "Austin"
	_, err = uc.Execute(context.Background(), domain.FindPropertiesFilters{City: &city, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFindPropertiesCacheFailuresAreNonFatal(t *testing.T) {
	repo := &fakePropertyRepo{
		findWithFiltersFunc: func(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
			return &domain.PaginatedProperties{}, nil
		},
	}
	cache := newFakeCache()
	cache.getErr = assert.AnError
	cache.setErr = assert.AnError

	uc := NewFindPropertiesUseCase(repo, cache, time.Minute)

	_, err := uc.Execute(context.Background(), domain.FindPropertiesFilters{})
	assert.NoError(t, err)
}
