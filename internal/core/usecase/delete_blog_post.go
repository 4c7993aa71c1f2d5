package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteBlogPostUseCase struct {
	repo port.BlogRepositoryPort
}

func NewDeleteBlogPostUseCase(repo port.BlogRepositoryPort) *DeleteBlogPostUseCase {
	return &DeleteBlogPostUseCase{repo: repo}
}

func (uc *DeleteBlogPostUseCase) Execute(ctx context.Context, postID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteBlogPost",
		"post_id":  postID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.repo.GetByID(ctx, postID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		ucLogger.Warn("Blog post not found", nil)
		return domain.ErrBlogPostNotFound
	}

	if err := uc.repo.Delete(ctx, postID); err != nil {
		ucLogger.Error("Repository failed to delete blog post", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: blog post deleted", nil)
	return nil
}
