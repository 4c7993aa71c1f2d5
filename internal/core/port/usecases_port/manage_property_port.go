package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property *domain.Property) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, property *domain.Property) (*domain.Property, error)
}

type SetPropertyStatusUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, status string) error
}
