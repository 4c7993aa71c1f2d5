package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type UserRepositoryPort interface {
	Save(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
