package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

const careersCachePrefix = "careers:"

type ListCareerPostingsUseCase struct {
	repo     port.CareerRepositoryPort
	cache    port.CachePort
	cacheTTL time.Duration
}

func NewListCareerPostingsUseCase(repo port.CareerRepositoryPort, cache port.CachePort, cacheTTL time.Duration) *ListCareerPostingsUseCase {
	return &ListCareerPostingsUseCase{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// Execute возвращает вакансии, опционально отфильтрованные по списку городов.
func (uc *ListCareerPostingsUseCase) Execute(ctx context.Context, locations []string, includeInactive bool) ([]domain.CareerPosting, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ListCareerPostings",
		"locations": locations,
	})

	ucLogger.Info("Use case started", nil)

	if includeInactive {
		postings, err := uc.repo.FindAll(ctx)
		if err != nil {
			ucLogger.Error("Repository returned an error", err, nil)
			return nil, err
		}
		ucLogger.Info("Use case finished successfully", port.Fields{"found": len(postings)})
		return postings, nil
	}

	cacheKey := careersCachePrefix + strings.Join(locations, ",")
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
			var postings []domain.CareerPosting
			if err := json.Unmarshal(cached, &postings); err == nil {
				ucLogger.Debug("Cache hit for career postings", nil)
				return postings, nil
			}
		}
	}

	postings, err := uc.repo.FindActive(ctx, locations)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(postings); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, payload, uc.cacheTTL); err != nil {
				ucLogger.Warn("Failed to cache career postings", port.Fields{"error": err.Error()})
			}
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(postings)})
	return postings, nil
}
