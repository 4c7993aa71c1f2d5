package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Top 10 Neighborhoods in 2026", "top-10-neighborhoods-in-2026"},
		{"  Buying vs. Renting: What's Right?  ", "buying-vs-renting-what-s-right"},
		{"---", ""},
		{"Hello, World!", "hello-world"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, DeriveSlug(tc.title), "title: %q", tc.title)
	}
}

func TestBlogPostValidateNew(t *testing.T) {
	p := BlogPost{Title: "  ", Content: ""}
	err := p.ValidateNew()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"Title is required", "Content is required"}, vErr.Details)

	p = BlogPost{Title: "Market update", Content: "Prices are up."}
	require.NoError(t, p.ValidateNew())
}
