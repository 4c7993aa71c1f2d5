package port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type LeadRepositoryPort interface {
	SaveViewingRequest(ctx context.Context, request *domain.ViewingRequest) error
	SaveContactRequest(ctx context.Context, request *domain.ContactRequest) error
	FindViewingRequests(ctx context.Context, limit, offset int) ([]domain.ViewingRequest, int, error)
	FindContactRequests(ctx context.Context, limit, offset int) ([]domain.ContactRequest, int, error)
}
