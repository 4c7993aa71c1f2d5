package usecase

import (
	"context"
	"strings"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePosting() *domain.CareerPosting {
	return &domain.CareerPosting{
		ID:       uuid.New(),
		Title:    "Listing Agent",
		Location: "Austin",
		Active:   true,
	}
}

func validApplication(postingID uuid.UUID) *domain.CareerApplication {
	return &domain.CareerApplication{
		PostingID: postingID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+1 (555) 123-4567",
		Message:   "I have five years of residential sales experience.",
	}
}

func TestSubmitCareerApplication(t *testing.T) {
	t.Run("persists application and publishes career lead", func(t *testing.T) {
		posting := activePosting()
		repo := &fakeCareerRepo{posting: posting}
		queue := &fakeLeadQueue{}
		uc := NewSubmitCareerApplicationUseCase(repo, queue, &fakeImageStorage{})

		saved, err := uc.Execute(context.Background(), validApplication(posting.ID))

		require.NoError(t, err)
		require.Len(t, repo.applications, 1)
		assert.Equal(t, "15551234567", saved.Phone)

		require.Len(t, queue.published, 1)
		event := queue.published[0]
		assert.Equal(t, domain.LeadTypeCareer, event.LeadType)
		assert.Contains(t, event.Message, `"Listing Agent"`)
	})

	t.Run("rejects empty message without touching the repository", func(t *testing.T) {
		posting := activePosting()
		repo := &fakeCareerRepo{posting: posting}
		uc := NewSubmitCareerApplicationUseCase(repo, &fakeLeadQueue{}, &fakeImageStorage{})

		application := validApplication(posting.ID)
		application.Message = "   "

		_, err := uc.Execute(context.Background(), application)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Details, "Message is required")
		assert.Empty(t, repo.applications)
	})

	t.Run("returns not found for inactive posting", func(t *testing.T) {
		posting := activePosting()
		posting.Active = false
		repo := &fakeCareerRepo{posting: posting}
		uc := NewSubmitCareerApplicationUseCase(repo, &fakeLeadQueue{}, &fakeImageStorage{})

		_, err := uc.Execute(context.Background(), validApplication(posting.ID))

		assert.ErrorIs(t, err, domain.ErrPostingNotFound)
	})

	t.Run("uploads inline resume and stores the public URL", func(t *testing.T) {
		posting := activePosting()
		repo := &fakeCareerRepo{posting: posting}
		storage := &fakeImageStorage{}
		uc := NewSubmitCareerApplicationUseCase(repo, &fakeLeadQueue{}, storage)

		application := validApplication(posting.ID)
		application.ResumeURL = "data:application/pdf;base64,JVBERi0xLjQ=" // "%PDF-1.4"

		saved, err := uc.Execute(context.Background(), application)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(saved.ResumeURL, "https://cdn.example.com/resumes/"))
		assert.True(t, strings.HasSuffix(saved.ResumeURL, ".pdf"))
		require.Len(t, storage.uploads, 1)
		for _, data := range storage.uploads {
			assert.Equal(t, []byte("%PDF-1.4"), data)
		}
	})

	t.Run("passes a plain resume URL through unchanged", func(t *testing.T) {
		posting := activePosting()
		repo := &fakeCareerRepo{posting: posting}
		storage := &fakeImageStorage{}
		uc := NewSubmitCareerApplicationUseCase(repo, &fakeLeadQueue{}, storage)

		application := validApplication(posting.ID)
		application.ResumeURL = "https://files.example.com/resume.pdf"

		saved, err := uc.Execute(context.Background(), application)

		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/resume.pdf", saved.ResumeURL)
		assert.Empty(t, storage.uploads)
	})

	t.Run("rejects unsupported resume type", func(t *testing.T) {
		posting := activePosting()
		repo := &fakeCareerRepo{posting: posting}
		uc := NewSubmitCareerApplicationUseCase(repo, &fakeLeadQueue{}, &fakeImageStorage{})

		application := validApplication(posting.ID)
		application.ResumeURL = "data:application/zip;base64,UEsDBA=="

		_, err := uc.Execute(context.Background(), application)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, repo.applications)
	})
}
