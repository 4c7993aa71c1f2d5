package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error)
}
