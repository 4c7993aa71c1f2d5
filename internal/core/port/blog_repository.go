package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type BlogRepositoryPort interface {
	FindPublished(ctx context.Context, tag string, limit, offset int) ([]domain.BlogPost, int, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.BlogPost, int, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	Save(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
