package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreatePropertyUseCase struct {
	repo         port.PropertyRepositoryPort
	imageStorage port.ImageStoragePort
	cache        port.CachePort
}

func NewCreatePropertyUseCase(repo port.PropertyRepositoryPort, imageStorage port.ImageStoragePort, cache port.CachePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo, imageStorage: imageStorage, cache: cache}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"title":    property.Title,
	})

	ucLogger.Info("Use case started", nil)

	if err := property.ValidateNew(); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	images, err := normalizeImages(ctx, uc.imageStorage, property.Images)
	if err != nil {
		ucLogger.Error("Failed to normalize property images", err, nil)
		return nil, err
	}
	property.Images = images

	property.ID = uuid.New()
	if property.Status == "" {
		property.Status = domain.PropertyStatusActive
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := uc.repo.Save(ctx, property); err != nil {
		ucLogger.Error("Repository failed to save property", err, nil)
		return nil, err
	}

	uc.invalidateListCache(ctx, ucLogger)

	ucLogger.Info("Use case finished: property created", port.Fields{"property_id": property.ID.String()})
	return property, nil
}

func (uc *CreatePropertyUseCase) invalidateListCache(ctx context.Context, logger port.LoggerPort) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteByPrefix(ctx, propertiesCachePrefix); err != nil {
		logger.Warn("Failed to invalidate properties cache", port.Fields{"error": err.Error()})
	}
}
