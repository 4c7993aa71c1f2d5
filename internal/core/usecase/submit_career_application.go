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

type SubmitCareerApplicationUseCase struct {
	careerRepo   port.CareerRepositoryPort
	leadQueue    port.LeadEventQueuePort
	imageStorage port.ImageStoragePort
}

func NewSubmitCareerApplicationUseCase(careerRepo port.CareerRepositoryPort, leadQueue port.LeadEventQueuePort, imageStorage port.ImageStoragePort) *SubmitCareerApplicationUseCase {
	return &SubmitCareerApplicationUseCase{careerRepo: careerRepo, leadQueue: leadQueue, imageStorage: imageStorage}
}

func (uc *SubmitCareerApplicationUseCase) Execute(ctx context.Context, application *domain.CareerApplication) (*domain.CareerApplication, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SubmitCareerApplication",
		"posting_id": application.PostingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := application.Validate(); err != nil {
		ucLogger.Warn("Application validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	posting, err := uc.careerRepo.GetByID(ctx, application.PostingID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if posting == nil || !posting.Active {
		ucLogger.Warn("Career posting not found or inactive", nil)
		return nil, domain.ErrPostingNotFound
	}

	resumeURL, err := normalizeResume(ctx, uc.imageStorage, application.ResumeURL)
	if err != nil {
		ucLogger.Warn("Resume normalization failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	application.ID = uuid.New()
	application.Phone = domain.NormalizePhone(application.Phone)
	application.ResumeURL = resumeURL
	application.CreatedAt = time.Now().UTC()

	if err := uc.careerRepo.SaveApplication(ctx, application); err != nil {
		ucLogger.Error("Repository failed to save application", err, nil)
		return nil, err
	}

	// Уведомление менеджерам уходит асинхронно, сбой публикации не ломает прием отклика
	event := domain.LeadEvent{
		LeadID:    application.ID,
		LeadType:  domain.LeadTypeCareer,
		Name:      application.Name,
		Email:     application.Email,
		Phone:     application.Phone,
		Message:   fmt.Sprintf("Application for %q: %s", posting.Title, application.Message),
		CreatedAt: application.CreatedAt,
	}
	if err := uc.leadQueue.PublishLeadEvent(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish career lead event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: application submitted", port.Fields{"application_id": application.ID.String()})
	return application, nil
}
