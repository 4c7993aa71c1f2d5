package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListLeadsUseCase struct {
	repo port.LeadRepositoryPort
}

func NewListLeadsUseCase(repo port.LeadRepositoryPort) *ListLeadsUseCase {
	return &ListLeadsUseCase{repo: repo}
}

func (uc *ListLeadsUseCase) ViewingRequests(ctx context.Context, limit, offset int) ([]domain.ViewingRequest, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListLeads", "kind": "viewing"})

	ucLogger.Info("Use case started", nil)

	requests, total, err := uc.repo.FindViewingRequests(ctx, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})
	return requests, total, nil
}

func (uc *ListLeadsUseCase) ContactRequests(ctx context.Context, limit, offset int) ([]domain.ContactRequest, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListLeads", "kind": "contact"})

	ucLogger.Info("Use case started", nil)

	requests, total, err := uc.repo.FindContactRequests(ctx, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})
	return requests, total, nil
}
