package usecase

import (
	"context"
	"encoding/json"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

const propertiesCachePrefix = "properties:"

type FindPropertiesUseCase struct {
	repo     port.PropertyRepositoryPort
	cache    port.CachePort
	cacheTTL time.Duration
}

func NewFindPropertiesUseCase(repo port.PropertyRepositoryPort, cache port.CachePort, cacheTTL time.Duration) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})

	ucLogger.Info("Use case started", nil)

	cacheKey := propertiesListCacheKey(filters)
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
			var result domain.PaginatedProperties
			if err := json.Unmarshal(cached, &result); err == nil {
				ucLogger.Debug("Cache hit for properties list", nil)
				return &result, nil
			}
		}
	}

	result, err := uc.repo.FindWithFilters(ctx, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			// Ошибка записи в кэш не должна ломать запрос
			if err := uc.cache.Set(ctx, cacheKey, payload, uc.cacheTTL); err != nil {
				ucLogger.Warn("Failed to cache properties list", port.Fields{"error": err.Error()})
			}
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.Pagination.TotalItems,
		"items_on_page": len(result.Items),
	})

	return result, nil
}

// propertiesListCacheKey строит ключ кэша из сериализованных фильтров.
func propertiesListCacheKey(filters domain.FindPropertiesFilters) string {
	raw, err := json.Marshal(filters)
	if err != nil {
		return propertiesCachePrefix + "default"
	}
	return propertiesCachePrefix + string(raw)
}
