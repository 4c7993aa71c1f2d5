package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CareerRepositoryPort interface {
	FindActive(ctx context.Context, locations []string) ([]domain.CareerPosting, error)
	FindAll(ctx context.Context) ([]domain.CareerPosting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerPosting, error)
	Save(ctx context.Context, posting *domain.CareerPosting) error
	Update(ctx context.Context, posting *domain.CareerPosting) error
	SaveApplication(ctx context.Context, application *domain.CareerApplication) error
	FindApplications(ctx context.Context, postingID uuid.UUID) ([]domain.CareerApplication, error)
}
