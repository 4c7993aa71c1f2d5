package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type NotifyLeadUseCase interface {
	Execute(ctx context.Context, event domain.LeadEvent) error
}
