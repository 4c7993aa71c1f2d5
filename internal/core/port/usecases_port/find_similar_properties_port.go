package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type FindSimilarPropertiesUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.Property, error)
}
