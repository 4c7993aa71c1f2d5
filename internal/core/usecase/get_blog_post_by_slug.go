package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type GetBlogPostBySlugUseCase struct {
	repo port.BlogRepositoryPort
}

func NewGetBlogPostBySlugUseCase(repo port.BlogRepositoryPort) *GetBlogPostBySlugUseCase {
	return &GetBlogPostBySlugUseCase{repo: repo}
}

func (uc *GetBlogPostBySlugUseCase) Execute(ctx context.Context, slug string) (*domain.BlogPost, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetBlogPostBySlug",
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	post, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if post == nil || !post.Published {
		ucLogger.Warn("Blog post not found or not published", nil)
		return nil, domain.ErrBlogPostNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return post, nil
}
