package usecase

import (
	"context"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyLead(t *testing.T) {
	event := domain.LeadEvent{
		LeadID:     uuid.New(),
		LeadType:   domain.LeadTypeViewing,
		PropertyID: uuid.New().String(),
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "5551234567",
		Message:    "Saturday works best",
		CreatedAt:  time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC),
	}

	t.Run("sends mail to all recipients", func(t *testing.T) {
		mailer := &fakeMailer{}
		uc := NewNotifyLeadUseCase(mailer, []string{"sales@example.com", "office@example.com"})

		require.NoError(t, uc.Execute(context.Background(), event))

		require.Len(t, mailer.sent, 1)
		mail := mailer.sent[0]
		assert.Equal(t, []string{"sales@example.com", "office@example.com"}, mail.to)
		assert.Equal(t, "New viewing request from Jane Doe", mail.subject)
		assert.Contains(t, mail.body, event.PropertyID)
		assert.Contains(t, mail.body, "Saturday works best")
	})

	t.Run("subject depends on lead type", func(t *testing.T) {
		mailer := &fakeMailer{}
		uc := NewNotifyLeadUseCase(mailer, []string{"sales@example.com"})

		careerEvent := event
		careerEvent.LeadType = domain.LeadTypeCareer
		require.NoError(t, uc.Execute(context.Background(), careerEvent))

		contactEvent := event
		contactEvent.LeadType = domain.LeadTypeContact
		require.NoError(t, uc.Execute(context.Background(), contactEvent))

		require.Len(t, mailer.sent, 2)
		assert.Equal(t, "New career application from Jane Doe", mailer.sent[0].subject)
		assert.Equal(t, "New contact request from Jane Doe", mailer.sent[1].subject)
	})

	t.Run("no recipients configured is a no-op", func(t *testing.T) {
		mailer := &fakeMailer{}
		uc := NewNotifyLeadUseCase(mailer, nil)

		require.NoError(t, uc.Execute(context.Background(), event))
		assert.Empty(t, mailer.sent)
	})

	t.Run("mailer failure is returned for retry", func(t *testing.T) {
		mailer := &fakeMailer{err: assert.AnError}
		uc := NewNotifyLeadUseCase(mailer, []string{"sales@example.com"})

		assert.Error(t, uc.Execute(context.Background(), event))
	})
}
