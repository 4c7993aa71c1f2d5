package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type SubmitContactRequestUseCase struct {
	leadRepo  port.LeadRepositoryPort
	leadQueue port.LeadEventQueuePort
}

func NewSubmitContactRequestUseCase(leadRepo port.LeadRepositoryPort, leadQueue port.LeadEventQueuePort) *SubmitContactRequestUseCase {
	return &SubmitContactRequestUseCase{leadRepo: leadRepo, leadQueue: leadQueue}
}

func (uc *SubmitContactRequestUseCase) Execute(ctx context.Context, request *domain.ContactRequest) (*domain.ContactRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubmitContactRequest",
	})

	ucLogger.Info("Use case started", nil)

	if err := request.Validate(); err != nil {
		ucLogger.Warn("Contact request validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	request.ID = uuid.New()
	request.Phone = domain.NormalizePhone(request.Phone)
	request.CreatedAt = time.Now().UTC()

	if err := uc.leadRepo.SaveContactRequest(ctx, request); err != nil {
		ucLogger.Error("Repository failed to save contact request", err, nil)
		return nil, err
	}

	event := domain.LeadEvent{
		LeadID:    request.ID,
		LeadType:  domain.LeadTypeContact,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Message:   request.Message,
		CreatedAt: request.CreatedAt,
	}
	if err := uc.leadQueue.PublishLeadEvent(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish contact lead event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: contact request submitted", port.Fields{"request_id": request.ID.String()})
	return request, nil
}
