package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type PropertyRepositoryPort interface {
	FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	FindSimilar(ctx context.Context, geohashPrefix string, excludeID uuid.UUID, dealType string, limit int) ([]domain.Property, error)
	Save(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
