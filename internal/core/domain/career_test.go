package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerApplicationValidate(t *testing.T) {
	t.Run("valid application", func(t *testing.T) {
		a := CareerApplication{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "+1 555 123 4567",
			Message: "I have five years of sales experience.",
		}
		require.NoError(t, a.Validate())
	})

	t.Run("empty form accumulates all violations", func(t *testing.T) {
		a := CareerApplication{}
		err := a.Validate()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"Name is required",
			"Email is required",
			"Message is required",
		}, vErr.Details)
	})

	t.Run("phone is optional but checked when present", func(t *testing.T) {
		a := CareerApplication{
			Name:    "Jane",
			Email:   "jane@example.com",
			Phone:   "123",
			Message: "Hi",
		}
		err := a.Validate()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Phone number must contain 10 to 15 digits"}, vErr.Details)
	})
}

func TestCareerPostingValidateNew(t *testing.T) {
	p := CareerPosting{Title: "Listing Agent"}
	err := p.ValidateNew()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"Location is required", "Description is required"}, vErr.Details)
}
