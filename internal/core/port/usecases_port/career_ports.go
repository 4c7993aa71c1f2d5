package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListCareerPostingsUseCase interface {
	Execute(ctx context.Context, locations []string, includeInactive bool) ([]domain.CareerPosting, error)
}

type SubmitCareerApplicationUseCase interface {
	Execute(ctx context.Context, application *domain.CareerApplication) (*domain.CareerApplication, error)
}

type CreateCareerPostingUseCase interface {
	Execute(ctx context.Context, posting *domain.CareerPosting) (*domain.CareerPosting, error)
}

type UpdateCareerPostingUseCase interface {
	Execute(ctx context.Context, posting *domain.CareerPosting) (*domain.CareerPosting, error)
}

type ListCareerApplicationsUseCase interface {
	Execute(ctx context.Context, postingID uuid.UUID) ([]domain.CareerApplication, error)
}
