package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type SetPropertyStatusUseCase struct {
	repo  port.PropertyRepositoryPort
	cache port.CachePort
}

func NewSetPropertyStatusUseCase(repo port.PropertyRepositoryPort, cache port.CachePort) *SetPropertyStatusUseCase {
	return &SetPropertyStatusUseCase{repo: repo, cache: cache}
}

// Execute меняет статус объекта. Деактивация вместо удаления: объект
// пропадает из публичного каталога, но остается в базе.
func (uc *SetPropertyStatusUseCase) Execute(ctx context.Context, propertyID uuid.UUID, status string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SetPropertyStatus",
		"property_id": propertyID.String(),
		"status":      status,
	})

	ucLogger.Info("Use case started", nil)

	switch status {
	case domain.PropertyStatusActive, domain.PropertyStatusInactive, domain.PropertyStatusSold:
	default:
		ucLogger.Warn("Invalid status value", nil)
		return domain.NewValidationError([]string{"Status must be one of: active, inactive, sold"})
	}

	existing, err := uc.repo.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		ucLogger.Warn("Property not found", nil)
		return domain.ErrPropertyNotFound
	}

	if err := uc.repo.SetStatus(ctx, propertyID, status); err != nil {
		ucLogger.Error("Repository failed to set property status", err, nil)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteByPrefix(ctx, propertiesCachePrefix); err != nil {
			ucLogger.Warn("Failed to invalidate properties cache", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: property status changed", nil)
	return nil
}
