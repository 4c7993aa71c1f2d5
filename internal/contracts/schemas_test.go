package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"events/lead/v1.json", "LeadEvent/1.0.0"},
		{"events/price-drop/v2.json", "PriceDropEvent/2.0.0"},
		{"events/lead.json", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, generateKeyFromPath(tc.path), "path: %q", tc.path)
	}
}

func TestValidateEvent(t *testing.T) {
	valid := `{
		"leadId": "6f1b0e7e-9a66-4c93-a2aa-0c5a33cf7a8a",
		"leadType": "viewing",
		"propertyId": "7e37d6c0-15a5-41b5-a3bc-2f0b89c2d9e1",
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "5551234567",
		"createdAt": "2026-03-15T12:00:00Z"
	}`
	require.NoError(t, ValidateEvent("LeadEvent", "1.0.0", []byte(valid)))

	t.Run("unknown lead type", func(t *testing.T) {
		body := `{
			"leadId": "6f1b0e7e-9a66-4c93-a2aa-0c5a33cf7a8a",
			"leadType": "walk-in",
			"name": "Jane",
			"email": "jane@example.com",
			"createdAt": "2026-03-15T12:00:00Z"
		}`
		assert.Error(t, ValidateEvent("LeadEvent", "1.0.0", []byte(body)))
	})

	t.Run("missing required fields", func(t *testing.T) {
		assert.Error(t, ValidateEvent("LeadEvent", "1.0.0", []byte(`{"leadType":"contact"}`)))
	})

	t.Run("unexpected extra field", func(t *testing.T) {
		body := `{
			"leadId": "6f1b0e7e-9a66-4c93-a2aa-0c5a33cf7a8a",
			"leadType": "contact",
			"name": "Jane",
			"email": "jane@example.com",
			"createdAt": "2026-03-15T12:00:00Z",
			"surprise": true
		}`
		assert.Error(t, ValidateEvent("LeadEvent", "1.0.0", []byte(body)))
	})

	t.Run("unknown schema key", func(t *testing.T) {
		assert.Error(t, ValidateEvent("MysteryEvent", "1.0.0", []byte(`{}`)))
	})

	t.Run("body is not JSON", func(t *testing.T) {
		assert.Error(t, ValidateEvent("LeadEvent", "1.0.0", []byte(`not-json`)))
	})
}
