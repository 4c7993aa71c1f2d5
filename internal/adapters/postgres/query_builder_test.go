package postgres

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestApplyFiltersDefaultsToActiveStatus(t *testing.T) {
	where, args := applyFilters(domain.FindPropertiesFilters{})

	assert.Equal(t, "WHERE p.status = 'active'", where)
	assert.Empty(t, args)
}

func TestApplyFiltersEmptyStatusDisablesStatusFilter(t *testing.T) {
	where, args := applyFilters(domain.FindPropertiesFilters{Status: strPtr("")})

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestApplyFiltersExplicitStatus(t *testing.T) {
	where, args := applyFilters(domain.FindPropertiesFilters{Status: strPtr("sold")})

	assert.Equal(t, "WHERE p.status = $1", where)
	assert.Equal(t, []interface{}{"sold"}, args)
}

func TestApplyFiltersNumbersArgsInOrder(t *testing.T) {
	filters := domain.FindPropertiesFilters{
		City:     strPtr("Austin"),
		DealType: strPtr("sale"),
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(500000),
		MinRooms: intPtr(2),
		Search:   strPtr("garden"),
	}

	where, args := applyFilters(filters)

	assert.Equal(t,
		"WHERE p.status = 'active' AND p.city = $1 AND p.deal_type = $2 AND p.price >= $3 AND p.price <= $4 AND p.rooms >= $5 AND (p.title ILIKE $6 OR p.address ILIKE $6)",
		where)
	assert.Equal(t, []interface{}{"Austin", "sale", float64(100000), float64(500000), 2, "%garden%"}, args)
}

func TestBuildOrderClause(t *testing.T) {
	tests := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"price", "asc", "ORDER BY p.price ASC, p.id ASC"},
		{"price", "desc", "ORDER BY p.price DESC, p.id ASC"},
		{"area", "ASC", "ORDER BY p.area_total ASC, p.id ASC"},
		{"created_at", "", "ORDER BY p.created_at DESC, p.id ASC"},
		// Неизвестная колонка откатывается на дату создания
		{"title; DROP TABLE properties", "asc", "ORDER BY p.created_at ASC, p.id ASC"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, buildOrderClause(tc.sortBy, tc.sortOrder), "sortBy=%q order=%q", tc.sortBy, tc.sortOrder)
	}
}
