package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateCareerPostingUseCase struct {
	repo  port.CareerRepositoryPort
	cache port.CachePort
}

func NewCreateCareerPostingUseCase(repo port.CareerRepositoryPort, cache port.CachePort) *CreateCareerPostingUseCase {
	return &CreateCareerPostingUseCase{repo: repo, cache: cache}
}

func (uc *CreateCareerPostingUseCase) Execute(ctx context.Context, posting *domain.CareerPosting) (*domain.CareerPosting, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateCareerPosting",
		"title":    posting.Title,
	})

	ucLogger.Info("Use case started", nil)

	if err := posting.ValidateNew(); err != nil {
		ucLogger.Warn("Posting validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	posting.ID = uuid.New()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now

	if err := uc.repo.Save(ctx, posting); err != nil {
		ucLogger.Error("Repository failed to save posting", err, nil)
		return nil, err
	}

	invalidateCareersCache(ctx, uc.cache, ucLogger)

	ucLogger.Info("Use case finished: posting created", port.Fields{"posting_id": posting.ID.String()})
	return posting, nil
}

type UpdateCareerPostingUseCase struct {
	repo  port.CareerRepositoryPort
	cache port.CachePort
}

func NewUpdateCareerPostingUseCase(repo port.CareerRepositoryPort, cache port.CachePort) *UpdateCareerPostingUseCase {
	return &UpdateCareerPostingUseCase{repo: repo, cache: cache}
}

func (uc *UpdateCareerPostingUseCase) Execute(ctx context.Context, posting *domain.CareerPosting) (*domain.CareerPosting, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateCareerPosting",
		"posting_id": posting.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.repo.GetByID(ctx, posting.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		ucLogger.Warn("Career posting not found", nil)
		return nil, domain.ErrPostingNotFound
	}

	if err := posting.ValidateNew(); err != nil {
		ucLogger.Warn("Posting validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	posting.CreatedAt = existing.CreatedAt
	posting.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, posting); err != nil {
		ucLogger.Error("Repository failed to update posting", err, nil)
		return nil, err
	}

	invalidateCareersCache(ctx, uc.cache, ucLogger)

	ucLogger.Info("Use case finished: posting updated", nil)
	return posting, nil
}

type ListCareerApplicationsUseCase struct {
	repo port.CareerRepositoryPort
}

func NewListCareerApplicationsUseCase(repo port.CareerRepositoryPort) *ListCareerApplicationsUseCase {
	return &ListCareerApplicationsUseCase{repo: repo}
}

func (uc *ListCareerApplicationsUseCase) Execute(ctx context.Context, postingID uuid.UUID) ([]domain.CareerApplication, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ListCareerApplications",
		"posting_id": postingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	applications, err := uc.repo.FindApplications(ctx, postingID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(applications)})
	return applications, nil
}

func invalidateCareersCache(ctx context.Context, cache port.CachePort, logger port.LoggerPort) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPrefix(ctx, careersCachePrefix); err != nil {
		logger.Warn("Failed to invalidate careers cache", port.Fields{"error": err.Error()})
	}
}
