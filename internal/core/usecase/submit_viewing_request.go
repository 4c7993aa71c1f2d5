package usecase

import (
	"context"
	"fmt"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type SubmitViewingRequestUseCase struct {
	leadRepo     port.LeadRepositoryPort
	propertyRepo port.PropertyRepositoryPort
	leadQueue    port.LeadEventQueuePort
	now          func() time.Time
}

func NewSubmitViewingRequestUseCase(leadRepo port.LeadRepositoryPort, propertyRepo port.PropertyRepositoryPort, leadQueue port.LeadEventQueuePort) *SubmitViewingRequestUseCase {
	return &SubmitViewingRequestUseCase{
		leadRepo:     leadRepo,
		propertyRepo: propertyRepo,
		leadQueue:    leadQueue,
		now:          time.Now,
	}
}

func (uc *SubmitViewingRequestUseCase) Execute(ctx context.Context, request *domain.ViewingRequest) (*domain.ViewingRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitViewingRequest",
		"property_id": request.PropertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := request.Validate(uc.now()); err != nil {
		ucLogger.Warn("Viewing request validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	property, err := uc.propertyRepo.GetByID(ctx, request.PropertyID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

	request.ID = uuid.New()
	request.Phone = domain.NormalizePhone(request.Phone)
	request.Status = domain.ViewingStatusNew
	request.CreatedAt = uc.now().UTC()

	if err := uc.leadRepo.SaveViewingRequest(ctx, request); err != nil {
		ucLogger.Error("Repository failed to save viewing request", err, nil)
		return nil, err
	}

	// Письмо менеджеру уходит через очередь, заявка принимается даже если брокер недоступен
	event := domain.LeadEvent{
		LeadID:     request.ID,
		LeadType:   domain.LeadTypeViewing,
		PropertyID: request.PropertyID.String(),
		Name:       fmt.Sprintf("%s %s", request.FirstName, request.LastName),
		Email:      request.Email,
		Phone:      request.Phone,
		Message:    request.Message,
		CreatedAt:  request.CreatedAt,
	}
	if err := uc.leadQueue.PublishLeadEvent(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish viewing lead event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: viewing request submitted", port.Fields{"request_id": request.ID.String()})
	return request, nil
}
