package port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// LeadEventQueuePort - публикация событий о новых лидах в очередь уведомлений.
type LeadEventQueuePort interface {
	PublishLeadEvent(ctx context.Context, event domain.LeadEvent) error
}
