package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListBlogPostsUseCase struct {
	repo port.BlogRepositoryPort
}

func NewListBlogPostsUseCase(repo port.BlogRepositoryPort) *ListBlogPostsUseCase {
	return &ListBlogPostsUseCase{repo: repo}
}

// Execute возвращает страницу статей. Черновики видны только админке
// (includeDrafts=true), публичный список содержит только опубликованные.
func (uc *ListBlogPostsUseCase) Execute(ctx context.Context, tag string, includeDrafts bool, limit, offset int) ([]domain.BlogPost, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "ListBlogPosts",
		"tag":            tag,
		"include_drafts": includeDrafts,
	})

	ucLogger.Info("Use case started", nil)

	var (
		posts []domain.BlogPost
		total int
		err   error
	)
	if includeDrafts {
		posts, total, err = uc.repo.FindAll(ctx, limit, offset)
	} else {
		posts, total, err = uc.repo.FindPublished(ctx, tag, limit, offset)
	}
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})
	return posts, total, nil
}
