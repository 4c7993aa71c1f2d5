package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedProperty(id uuid.UUID, images ...string) *domain.Property {
	return &domain.Property{
		ID:           id,
		Title:        "Riverside Apartment",
		Price:        250000,
		Currency:     "USD",
		DealType:     domain.DealTypeSale,
		PropertyType: "apartment",
		Status:       domain.PropertyStatusActive,
		Address:      "12 River St",
		City:         "Austin",
		Images:       images,
	}
}

func TestUpdateProperty(t *testing.T) {
	propertyID := uuid.New()

	newUseCase := func(existing *domain.Property, storage *fakeImageStorage) *UpdatePropertyUseCase {
		repo := &fakePropertyRepo{
			getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
				if existing != nil && id == existing.ID {
					return existing, nil
				}
				return nil, nil
			},
			updateFunc: func(ctx context.Context, property *domain.Property) error { return nil },
		}
		return NewUpdatePropertyUseCase(repo, storage, newFakeCache())
	}

	t.Run("deletes replaced images from storage", func(t *testing.T) {
		existing := storedProperty(propertyID,
			"https://cdn.example.com/properties/old.jpg",
			"https://cdn.example.com/properties/kept.jpg",
		)
		storage := &fakeImageStorage{}
		uc := newUseCase(existing, storage)

		updated := storedProperty(propertyID, "https://cdn.example.com/properties/kept.jpg")
		_, err := uc.Execute(context.Background(), updated)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/properties/old.jpg"}, storage.deleted)
	})

	t.Run("keeps storage untouched when images are unchanged", func(t *testing.T) {
		existing := storedProperty(propertyID, "https://cdn.example.com/properties/kept.jpg")
		storage := &fakeImageStorage{}
		uc := newUseCase(existing, storage)

		_, err := uc.Execute(context.Background(), storedProperty(propertyID, "https://cdn.example.com/properties/kept.jpg"))

		require.NoError(t, err)
		assert.Empty(t, storage.deleted)
	})

	t.Run("unknown property", func(t *testing.T) {
		uc := newUseCase(nil, &fakeImageStorage{})

		_, err := uc.Execute(context.Background(), storedProperty(uuid.New()))
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}
