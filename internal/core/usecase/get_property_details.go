package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyDetailsUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyDetailsUseCase(repo port.PropertyRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{repo: repo}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
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

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
