package usecases_port

import (
	"context"
	"time"

	"brokerage-service/internal/core/domain"
)

type SubmitViewingRequestUseCase interface {
	Execute(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error)
}

type SubmitContactRequestUseCase interface {
	Execute(ctx context.Context, request *domain.ContactRequest) (*domain.ContactRequest, error)
}

type GetViewingSlotsUseCase interface {
	Execute(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error)
}

type ListLeadsUseCase interface {
	ViewingRequests(ctx context.Context, limit, offset int) ([]domain.ViewingRequest, int, error)
	ContactRequests(ctx context.Context, limit, offset int) ([]domain.ContactRequest, int, error)
}
