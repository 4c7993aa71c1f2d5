package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	grid := BuildMonthGrid(2026, time.March, now)

	require.Len(t, grid.Cells, 42)
	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, 3, grid.Month)

	// 1 марта 2026 - воскресенье, сетка начинается прямо с него
	assert.Equal(t, "2026-03-01", grid.Cells[0].Date)
	assert.True(t, grid.Cells[0].InMonth)

	// Прошедшие даты не выбираются, сегодня и будущее - выбираются
	for _, cell := range grid.Cells {
		switch {
		case cell.Date < "2026-03-15":
			assert.False(t, cell.Selectable, "past cell %s must not be selectable", cell.Date)
		default:
			assert.True(t, cell.Selectable, "cell %s must be selectable", cell.Date)
		}
		if cell.Date == "2026-03-15" {
			assert.True(t, cell.IsToday)
		} else {
			assert.False(t, cell.IsToday, "cell %s must not be today", cell.Date)
		}
	}

	// Хвост сетки уходит в апрель
	last := grid.Cells[41]
	assert.Equal(t, "2026-04-11", last.Date)
	assert.False(t, last.InMonth)
}

func TestBuildMonthGridStartsOnSunday(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	// 1 мая 2026 - пятница, сетка должна начаться с воскресенья 26 апреля
	grid := BuildMonthGrid(2026, time.May, now)

	require.Len(t, grid.Cells, 42)
	assert.Equal(t, "2026-04-26", grid.Cells[0].Date)
	assert.False(t, grid.Cells[0].InMonth)
	assert.Equal(t, "2026-05-01", grid.Cells[5].Date)
	assert.True(t, grid.Cells[5].InMonth)
}

func TestNextPrevMonth(t *testing.T) {
	year, month := NextMonth(2026, time.December)
	assert.Equal(t, 2027, year)
	assert.Equal(t, time.January, month)

	year, month = NextMonth(2026, time.March)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.April, month)

	year, month = PrevMonth(2026, time.January)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.December, month)

	year, month = PrevMonth(2026, time.July)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.June, month)
}
