package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validViewingRequest(propertyID uuid.UUID) *domain.ViewingRequest {
	return &domain.ViewingRequest{
		PropertyID:     propertyID,
		Title:          "Mrs",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Phone:          "+1 (555) 123-4567",
		PreferredDate:  "2026-03-20",
		PreferredTime:  domain.PreferredTimeMorning,
		Message:        "Looking forward to the visit",
		ReferralSource: "google",
	}
}

func TestSubmitViewingRequest(t *testing.T) {
	propertyID := uuid.New()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	newUseCase := func(leadRepo *fakeLeadRepo, queue *fakeLeadQueue, property *domain.Property) *SubmitViewingRequestUseCase {
		propertyRepo := &fakePropertyRepo{
			getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
				if property != nil && id == property.ID {
					return property, nil
				}
				return nil, nil
			},
		}
		uc := NewSubmitViewingRequestUseCase(leadRepo, propertyRepo, queue)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("saves request and publishes lead event", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		queue := &fakeLeadQueue{}
		uc := newUseCase(leadRepo, queue, &domain.Property{ID: propertyID, Status: domain.PropertyStatusActive})

		saved, err := uc.Execute(context.Background(), validViewingRequest(propertyID))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.Equal(t, "15551234567", saved.Phone, "phone must be normalized to digits")
		assert.Equal(t, domain.ViewingStatusNew, saved.Status)
		require.Len(t, leadRepo.viewingRequests, 1)
		assert.Equal(t, "Mrs", leadRepo.viewingRequests[0].Title)
		assert.Equal(t, "google", leadRepo.viewingRequests[0].ReferralSource)

		require.Len(t, queue.published, 1)
		event := queue.published[0]
		assert.Equal(t, domain.LeadTypeViewing, event.LeadType)
		assert.Equal(t, saved.ID, event.LeadID)
		assert.Equal(t, propertyID.String(), event.PropertyID)
		assert.Equal(t, "Jane Doe", event.Name)
	})

	t.Run("unknown property", func(t *testing.T) {
		uc := newUseCase(&fakeLeadRepo{}, &fakeLeadQueue{}, nil)

		_, err := uc.Execute(context.Background(), validViewingRequest(uuid.New()))
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})

	t.Run("validation failure does not touch repository", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		uc := newUseCase(leadRepo, &fakeLeadQueue{}, &domain.Property{ID: propertyID})

		request := validViewingRequest(propertyID)
		request.Email = "bad-email"
		request.PreferredDate = "2026-03-01"

		_, err := uc.Execute(context.Background(), request)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"Email format is invalid",
			"Preferred date must not be in the past",
		}, vErr.Details)
		assert.Empty(t, leadRepo.viewingRequests)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		queue := &fakeLeadQueue{publishErr: errors.New("broker is down")}
		uc := newUseCase(leadRepo, queue, &domain.Property{ID: propertyID})

		_, err := uc.Execute(context.Background(), validViewingRequest(propertyID))
		require.NoError(t, err)
		assert.Len(t, leadRepo.viewingRequests, 1)
	})
}

func TestSubmitContactRequest(t *testing.T) {
	t.Run("saves request and publishes contact event", func(t *testing.T) {
		leadRepo := &fakeLeadRepo{}
		queue := &fakeLeadQueue{}
		uc := NewSubmitContactRequestUseCase(leadRepo, queue)

		request := &domain.ContactRequest{
			Name:    "John Smith",
			Email:   "john@example.com",
			Message: "Please call me back",
		}

		saved, err := uc.Execute(context.Background(), request)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		require.Len(t, queue.published, 1)
		assert.Equal(t, domain.LeadTypeContact, queue.published[0].LeadType)
	})

	t.Run("invalid form", func(t *testing.T) {
		uc := NewSubmitContactRequestUseCase(&fakeLeadRepo{}, &fakeLeadQueue{})

		_, err := uc.Execute(context.Background(), &domain.ContactRequest{})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details, "Message is required")
	})
}
