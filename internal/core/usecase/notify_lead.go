package usecase

import (
	"context"
	"fmt"
	"strings"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// NotifyLeadUseCase отправляет менеджерам письмо о новом лиде.
// Вызывается консьюмером очереди событий.
type NotifyLeadUseCase struct {
	mailer     port.MailerPort
	recipients []string
}

func NewNotifyLeadUseCase(mailer port.MailerPort, recipients []string) *NotifyLeadUseCase {
	return &NotifyLeadUseCase{mailer: mailer, recipients: recipients}
}

func (uc *NotifyLeadUseCase) Execute(ctx context.Context, event domain.LeadEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "NotifyLead",
		"lead_id":   event.LeadID.String(),
		"lead_type": event.LeadType,
	})

	ucLogger.Info("Use case started", nil)

	if len(uc.recipients) == 0 {
		ucLogger.Warn("No notification recipients configured, skipping", nil)
		return nil
	}

	subject := leadSubject(event)
	body := leadBody(event)

	if err := uc.mailer.Send(ctx, uc.recipients, subject, body); err != nil {
		ucLogger.Error("Mailer failed to send notification", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: notification sent", port.Fields{"recipients": len(uc.recipients)})
	return nil
}

func leadSubject(event domain.LeadEvent) string {
	switch event.LeadType {
	case domain.LeadTypeViewing:
		return fmt.Sprintf("New viewing request from %s", event.Name)
	case domain.LeadTypeCareer:
		return fmt.Sprintf("New career application from %s", event.Name)
	default:
		return fmt.Sprintf("New contact request from %s", event.Name)
	}
}

func leadBody(event domain.LeadEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lead ID: %s\n", event.LeadID)
	fmt.Fprintf(&b, "Type: %s\n", event.LeadType)
	if event.PropertyID != "" {
		fmt.Fprintf(&b, "Property: %s\n", event.PropertyID)
	}
	fmt.Fprintf(&b, "Name: %s\n", event.Name)
	fmt.Fprintf(&b, "Email: %s\n", event.Email)
	fmt.Fprintf(&b, "Phone: %s\n", event.Phone)
	if event.Message != "" {
		fmt.Fprintf(&b, "Message:\n%s\n", event.Message)
	}
	fmt.Fprintf(&b, "Received at: %s\n", event.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}
