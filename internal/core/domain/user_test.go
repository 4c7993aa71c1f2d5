package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Jane Doe ", " Jane.Doe@Example.COM ", " 5551234567 ", "s3cretpass", RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "jane.doe@example.com", u.Email)
	assert.Equal(t, "5551234567", u.Phone)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cretpass", u.PasswordHash)

	assert.True(t, u.CheckPassword("s3cretpass"))
	assert.False(t, u.CheckPassword("wrongpass"))
}

func TestClaimsSplitName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Jane van der Berg", "Jane", "van der Berg"},
		{"  ", "", ""},
	}

	for _, tc := range tests {
		c := Claims{Name: tc.name}
		first, last := c.SplitName()
		assert.Equal(t, tc.firstName, first, "name: %q", tc.name)
		assert.Equal(t, tc.lastName, last, "name: %q", tc.name)
	}
}
