package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewingRequestValidate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid request", func(t *testing.T) {
		r := ViewingRequest{
			PropertyID:    uuid.New(),
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane.doe@example.com",
			Phone:         "+1 (555) 123-4567",
			PreferredDate: "2026-03-20",
			PreferredTime: PreferredTimeMorning,
		}
		require.NoError(t, r.Validate(now))
	})

	t.Run("empty form accumulates all violations", func(t *testing.T) {
		r := ViewingRequest{}
		err := r.Validate(now)
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"First name is required",
			"Last name is required",
			"Email is required",
			"Phone number is required",
			"Preferred date is required",
		}, vErr.Details)
	})

	t.Run("missing date is the only violation", func(t *testing.T) {
		r := ViewingRequest{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Phone:         "5551234567",
			PreferredTime: PreferredTimeAfternoon,
		}
		err := r.Validate(now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Preferred date is required"}, vErr.Details)
	})

	t.Run("date in the past", func(t *testing.T) {
		r := ViewingRequest{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Phone:         "5551234567",
			PreferredDate: "2026-03-14",
		}
		err := r.Validate(now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details, "Preferred date must not be in the past")
	})

	t.Run("today is allowed", func(t *testing.T) {
		r := ViewingRequest{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Phone:         "5551234567",
			PreferredDate: "2026-03-15",
		}
		require.NoError(t, r.Validate(now))
	})

	t.Run("bad date format", func(t *testing.T) {
		r := ViewingRequest{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Phone:         "5551234567",
			PreferredDate: "20-03-2026",
		}
		err := r.Validate(now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details, "Preferred date must be in YYYY-MM-DD format")
	})

	t.Run("unknown preferred time", func(t *testing.T) {
		r := ViewingRequest{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Phone:         "5551234567",
			PreferredTime: "evening",
		}
		err := r.Validate(now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details, "Preferred time must be one of: morning, afternoon, all-day")
	})
}

func TestContactRequestValidate(t *testing.T) {
	t.Run("valid without phone", func(t *testing.T) {
		r := ContactRequest{
			Name:    "John Smith",
			Email:   "john@example.com",
			Message: "Interested in your listings",
		}
		require.NoError(t, r.Validate())
	})

	t.Run("missing message", func(t *testing.T) {
		r := ContactRequest{Name: "John", Email: "john@example.com"}
		err := r.Validate()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Message is required"}, vErr.Details)
	})

	t.Run("invalid email and short phone", func(t *testing.T) {
		r := ContactRequest{
			Name:    "John",
			Email:   "not-an-email",
			Phone:   "12345",
			Message: "Hello",
		}
		err := r.Validate()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"Email format is invalid",
			"Phone number must contain 10 to 15 digits",
		}, vErr.Details)
	})
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "15551234567", NormalizePhone("+1 (555) 123-4567"))
	assert.Equal(t, "", NormalizePhone("abc"))
}
