package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Статусы объекта недвижимости.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
	PropertyStatusSold     = "sold"
)

// Типы сделки.
const (
	DealTypeSale = "sale"
	DealTypeRent = "rent"
)

// Agent - контактное лицо, закрепленное за объектом.
type Agent struct {
	Name  string
	Phone string
	Email string
	Photo string
}

// Property - основная доменная сущность каталога недвижимости.
type Property struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Price        float64
	Currency     string
	DealType     string
	PropertyType string // apartment, house, commercial, land
	Status       string

	Address   string
	City      string
	District  string
	Latitude  float64
	Longitude float64
	Geohash   string // Префикс геохэша используется для поиска похожих объектов рядом.

	AreaTotal float64
	Rooms     int
	Bedrooms  int
	Bathrooms int
	Floor     int
	Floors    int
	YearBuilt int

	Features []string // Хранится в БД одной строкой через запятую.
	Images   []string

	Agent Agent

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindPropertiesFilters - набор фильтров для поиска по каталогу.
// nil-указатель означает "фильтр не задан".
type FindPropertiesFilters struct {
	City         *string
	District     *string
	DealType     *string
	PropertyType *string
	Status       *string
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	MinRooms     *int
	MaxRooms     *int
	Search       *string // Подстрочный поиск по заголовку и адресу.

	SortBy    string // price, area_total, created_at
	SortOrder string // asc, desc

	Limit  int
	Offset int
}

// PaginationInfo - метаданные страницы в ответе списка.
type PaginationInfo struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// PaginatedProperties - страница каталога вместе с метаданными.
type PaginatedProperties struct {
	Items      []Property
	Pagination PaginationInfo
}

// ValidateNew проверяет обязательные поля перед созданием объекта.
// Накапливаем все нарушения, а не останавливаемся на первом.
func (p *Property) ValidateNew() error {
	var details []string
	if strings.TrimSpace(p.Title) == "" {
		details = append(details, "Title is required")
	}
	if p.Price <= 0 {
		details = append(details, "Price must be greater than zero")
	}
	if !isValidDealType(p.DealType) {
		details = append(details, "Deal type must be one of: sale, rent")
	}
	if strings.TrimSpace(p.PropertyType) == "" {
		details = append(details, "Property type is required")
	}
	if strings.TrimSpace(p.City) == "" {
		details = append(details, "City is required")
	}
	if strings.TrimSpace(p.Address) == "" {
		details = append(details, "Address is required")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}

func isValidDealType(dt string) bool {
	return dt == DealTypeSale || dt == DealTypeRent
}

// JoinCommaList склеивает список значений в одну строку через запятую.
// Пустые элементы отбрасываются.
func JoinCommaList(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return strings.Join(cleaned, ", ")
}

// SplitCommaList разбивает строку со значениями через запятую обратно в список.
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
