package usecase

import (
	"context"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetViewingSlots(t *testing.T) {
	uc := NewGetViewingSlotsUseCase()
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	}

	t.Run("builds full grid", func(t *testing.T) {
		grid, err := uc.Execute(context.Background(), 2026, time.March)
		require.NoError(t, err)

		assert.Equal(t, 2026, grid.Year)
		assert.Equal(t, 3, grid.Month)
		assert.Len(t, grid.Cells, 42)
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1999, time.March)

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 2026, time.Month(13))

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
