package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateBlogPostUseCase struct {
	repo port.BlogRepositoryPort
}

func NewCreateBlogPostUseCase(repo port.BlogRepositoryPort) *CreateBlogPostUseCase {
	return &CreateBlogPostUseCase{repo: repo}
}

func (uc *CreateBlogPostUseCase) Execute(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateBlogPost",
		"title":    post.Title,
	})

	ucLogger.Info("Use case started", nil)

	if err := post.ValidateNew(); err != nil {
		ucLogger.Warn("Blog post validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Slug приходит из формы или выводится из заголовка
	if post.Slug == "" {
		post.Slug = domain.DeriveSlug(post.Title)
	}
	if post.Slug == "" {
		return nil, domain.NewValidationError([]string{"Slug could not be derived from title"})
	}

	post.ID = uuid.New()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := uc.repo.Save(ctx, post); err != nil {
		if err == domain.ErrSlugInUse {
			ucLogger.Warn("Slug already in use", port.Fields{"slug": post.Slug})
		} else {
			ucLogger.Error("Repository failed to save blog post", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished: blog post created", port.Fields{"post_id": post.ID.String(), "slug": post.Slug})
	return post, nil
}
