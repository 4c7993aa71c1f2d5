package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGeohash(t *testing.T) {
	// Координаты без геокодирования не должны давать общий геохэш нулевой точки
	assert.Equal(t, "", encodeGeohash(0, 0))

	hash := encodeGeohash(30.2672, -97.7431)
	assert.Len(t, hash, geohashPrecision)

	// Близкие точки попадают в одну ячейку
	assert.Equal(t, hash, encodeGeohash(30.2680, -97.7440))

	// Далекие - в разные
	assert.NotEqual(t, hash, encodeGeohash(40.7128, -74.0060))
}
