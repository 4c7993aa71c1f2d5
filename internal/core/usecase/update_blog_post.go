package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type UpdateBlogPostUseCase struct {
	repo port.BlogRepositoryPort
}

func NewUpdateBlogPostUseCase(repo port.BlogRepositoryPort) *UpdateBlogPostUseCase {
	return &UpdateBlogPostUseCase{repo: repo}
}

func (uc *UpdateBlogPostUseCase) Execute(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateBlogPost",
		"post_id":  post.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.repo.GetByID(ctx, post.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		ucLogger.Warn("Blog post not found", nil)
		return nil, domain.ErrBlogPostNotFound
	}

	if err := post.ValidateNew(); err != nil {
		ucLogger.Warn("Blog post validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if post.Slug == "" {
		post.Slug = existing.Slug
	}
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, post); err != nil {
		if err == domain.ErrSlugInUse {
			ucLogger.Warn("Slug already in use", port.Fields{"slug": post.Slug})
		} else {
			ucLogger.Error("Repository failed to update blog post", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished: blog post updated", nil)
	return post, nil
}
