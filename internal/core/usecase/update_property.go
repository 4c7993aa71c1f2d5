package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type UpdatePropertyUseCase struct {
	repo         port.PropertyRepositoryPort
	imageStorage port.ImageStoragePort
	cache        port.CachePort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort, imageStorage port.ImageStoragePort, cache port.CachePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{repo: repo, imageStorage: imageStorage, cache: cache}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": property.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.repo.GetByID(ctx, property.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

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

	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, property); err != nil {
		ucLogger.Error("Repository failed to update property", err, nil)
		return nil, err
	}

	// Замененные изображения чистятся после успешного обновления записи,
	// сбой удаления оставляет лишь осиротевший файл и не ломает операцию.
	for _, dropped := range droppedImages(existing.Images, property.Images) {
		if err := uc.imageStorage.Delete(ctx, dropped); err != nil {
			ucLogger.Warn("Failed to delete replaced image", port.Fields{"url": dropped, "error": err.Error()})
		}
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteByPrefix(ctx, propertiesCachePrefix); err != nil {
			ucLogger.Warn("Failed to invalidate properties cache", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: property updated", nil)
	return property, nil
}

// droppedImages возвращает URL из old, которых больше нет в current.
func droppedImages(old, current []string) []string {
	kept := make(map[string]struct{}, len(current))
	for _, url := range current {
		kept[url] = struct{}{}
	}

	var dropped []string
	for _, url := range old {
		if _, ok := kept[url]; !ok {
			dropped = append(dropped, url)
		}
	}
	return dropped
}
