package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type FindSimilarPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewFindSimilarPropertiesUseCase(repo port.PropertyRepositoryPort) *FindSimilarPropertiesUseCase {
	return &FindSimilarPropertiesUseCase{repo: repo}
}

// Execute ищет активные объекты рядом с заданным: совпадение по префиксу
// геохэша и типу сделки.
func (uc *FindSimilarPropertiesUseCase) Execute(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "FindSimilarProperties",
		"property_id": propertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

	if limit <= 0 {
		limit = 4
	}

	similar, err := uc.repo.FindSimilar(ctx, property.Geohash, property.ID, property.DealType, limit)
	if err != nil {
		ucLogger.Error("Repository failed to find similar properties", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(similar)})
	return similar, nil
}
