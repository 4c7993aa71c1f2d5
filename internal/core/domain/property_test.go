package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyValidateNew(t *testing.T) {
	t.Run("valid property", func(t *testing.T) {
		p := Property{
			Title:        "Cozy two-bedroom apartment",
			Price:        250000,
			DealType:     DealTypeSale,
			PropertyType: "apartment",
			City:         "Austin",
			Address:      "100 Main St",
		}
		require.NoError(t, p.ValidateNew())
	})

	t.Run("empty property accumulates all violations", func(t *testing.T) {
		p := Property{}
		err := p.ValidateNew()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{
			"Title is required",
			"Price must be greater than zero",
			"Deal type must be one of: sale, rent",
			"Property type is required",
			"City is required",
			"Address is required",
		}, vErr.Details)
	})

	t.Run("unknown deal type", func(t *testing.T) {
		p := Property{
			Title:        "Office",
			Price:        1000,
			DealType:     "lease",
			PropertyType: "office",
			City:         "Austin",
			Address:      "1 Congress Ave",
		}
		err := p.ValidateNew()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Deal type must be one of: sale, rent"}, vErr.Details)
	})
}

func TestCommaListRoundTrip(t *testing.T) {
	joined := JoinCommaList([]string{" Pool ", "", "Garage", "Garden "})
	assert.Equal(t, "Pool, Garage, Garden", joined)

	assert.Equal(t, []string{"Pool", "Garage", "Garden"}, SplitCommaList(joined))
	assert.Nil(t, SplitCommaList("   "))
	assert.Equal(t, "", JoinCommaList(nil))
}
