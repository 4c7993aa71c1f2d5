package postgres

import (
	"fmt"
	"strings"

	"brokerage-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(initial ...string) *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: initial,
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter и AddIntFilter принимают указатели: nil означает "граница не задана"
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build создает финальную WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// allowedSortColumns - колонки, по которым разрешена сортировка каталога.
var allowedSortColumns = map[string]string{
	"price":      "p.price",
	"area":       "p.area_total",
	"created_at": "p.created_at",
}

// applyFilters разбирает фильтры каталога и строит WHERE-часть запроса
func applyFilters(filters domain.FindPropertiesFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Публичный каталог видит только активные объекты, админка задает статус явно
	if filters.Status != nil {
		if *filters.Status != "" {
			qb.addCondition("%s = $%d", "p.status", *filters.Status)
		}
	} else {
		qb.conditions = append(qb.conditions, "p.status = 'active'")
	}

	if filters.City != nil && *filters.City != "" {
		qb.addCondition("%s = $%d", "p.city", *filters.City)
	}
	if filters.District != nil && *filters.District != "" {
		qb.addCondition("%s = $%d", "p.district", *filters.District)
	}
	if filters.DealType != nil && *filters.DealType != "" {
		qb.addCondition("%s = $%d", "p.deal_type", *filters.DealType)
	}
	if filters.PropertyType != nil && *filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.property_type", *filters.PropertyType)
	}

	qb.AddFloatFilter("p.price", filters.MinPrice, filters.MaxPrice)
	qb.AddFloatFilter("p.area_total", filters.MinArea, filters.MaxArea)
	qb.AddIntFilter("p.rooms", filters.MinRooms, filters.MaxRooms)

	// Подстрочный поиск по заголовку и адресу
	if filters.Search != nil && *filters.Search != "" {
		pattern := "%" + *filters.Search + "%"
		condition := fmt.Sprintf("(p.title ILIKE $%d OR p.address ILIKE $%d)", qb.argId, qb.argId)
		qb.conditions = append(qb.conditions, condition)
		qb.args = append(qb.args, pattern)
		qb.argId++
	}

	return qb.build()
}

// buildOrderClause строит ORDER BY из белого списка колонок
func buildOrderClause(sortBy, sortOrder string) string {
	column, ok := allowedSortColumns[sortBy]
	if !ok {
		column = "p.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, p.id ASC", column, direction)
}
