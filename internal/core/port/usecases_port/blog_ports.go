package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListBlogPostsUseCase interface {
	Execute(ctx context.Context, tag string, includeDrafts bool, limit, offset int) ([]domain.BlogPost, int, error)
}

type GetBlogPostBySlugUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.BlogPost, error)
}

type CreateBlogPostUseCase interface {
	Execute(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
}

type UpdateBlogPostUseCase interface {
	Execute(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
}

type DeleteBlogPostUseCase interface {
	Execute(ctx context.Context, postID uuid.UUID) error
}
