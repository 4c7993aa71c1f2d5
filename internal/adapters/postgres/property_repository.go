package postgres

import (
	"context"
	"errors"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `
	p.id, p.title, p.description, p.price, p.currency, p.deal_type, p.property_type, p.status,
	p.address, p.city, p.district, p.latitude, p.longitude, p.geohash,
	p.area_total, p.rooms, p.bedrooms, p.bathrooms, p.floor, p.floors, p.year_built,
	p.features, p.images,
	p.agent_name, p.agent_phone, p.agent_email, p.agent_photo,
	p.created_at, p.updated_at`

// PropertyRepository - реализация PropertyRepositoryPort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

// FindWithFilters ищет объекты по набору фильтров с пагинацией
func (r *PropertyRepository) FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindWithFilters",
		"limit":     filters.Limit,
		"offset":    filters.Offset,
	})

	whereClause, args := applyFilters(filters)

	limit := filters.Limit
	if limit <= 0 {
		limit = 12
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	// Два запроса (COUNT и страница данных) выполняются в одной транзакции
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	pagination := domain.PaginationInfo{
		TotalItems:   totalCount,
		TotalPages:   (totalCount + limit - 1) / limit,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}

	if totalCount == 0 {
		return &domain.PaginatedProperties{Items: []domain.Property{}, Pagination: pagination}, nil
	}

	orderClause := buildOrderClause(filters.SortBy, filters.SortOrder)
	dataQuery := fmt.Sprintf(
		"SELECT %s FROM properties p %s %s LIMIT $%d OFFSET $%d",
		propertyColumns, whereClause, orderClause, len(args)+1, len(args)+2,
	)
	rows, err := tx.Query(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		repoLogger.Error("Failed to find properties", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Property, 0, limit)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		items = append(items, *property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read property rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Successfully found properties for page", port.Fields{
		"total_count": totalCount,
		"count":       len(items),
	})

	return &domain.PaginatedProperties{Items: items, Pagination: pagination}, nil
}

// GetByID возвращает объект по идентификатору.
// Возвращает (nil, nil), если объект не найден.
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "GetByID",
		"property_id": id.String(),
	})

	query := fmt.Sprintf("SELECT %s FROM properties p WHERE p.id = $1", propertyColumns)

	repoLogger.Debug("Executing query to get property", nil)
	property, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to get property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return property, nil
}

// FindSimilar ищет активные объекты с тем же префиксом геохэша и типом сделки.
func (r *PropertyRepository) FindSimilar(ctx context.Context, geohashPrefix string, excludeID uuid.UUID, dealType string, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindSimilar",
		"geohash":   geohashPrefix,
	})

	if geohashPrefix == "" {
		return []domain.Property{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s FROM properties p
		WHERE p.geohash = $1 AND p.id <> $2 AND p.deal_type = $3 AND p.status = 'active'
		ORDER BY p.created_at DESC
		LIMIT $4`, propertyColumns)

	rows, err := r.pool.Query(ctx, query, geohashPrefix, excludeID, dealType, limit)
	if err != nil {
		repoLogger.Error("Failed to find similar properties", err, nil)
		return nil, fmt.Errorf("failed to find similar properties: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Property, 0, limit)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		items = append(items, *property)
	}
	return items, rows.Err()
}

// Save сохраняет новый объект. Геохэш вычисляется здесь, чтобы все пути
// записи давали одинаковый префикс.
func (r *PropertyRepository) Save(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Save",
		"property_id": property.ID.String(),
	})

	property.Geohash = encodeGeohash(property.Latitude, property.Longitude)

	query := `
		INSERT INTO properties (
			id, title, description, price, currency, deal_type, property_type, status,
			address, city, district, latitude, longitude, geohash,
			area_total, rooms, bedrooms, bathrooms, floor, floors, year_built,
			features, images,
			agent_name, agent_phone, agent_email, agent_photo,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21,
			$22, $23,
			$24, $25, $26, $27,
			$28, $29
		)`

	repoLogger.Debug("Executing query to save property", nil)
	_, err := r.pool.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Price, property.Currency,
		property.DealType, property.PropertyType, property.Status,
		property.Address, property.City, property.District, property.Latitude, property.Longitude, property.Geohash,
		property.AreaTotal, property.Rooms, property.Bedrooms, property.Bathrooms,
		property.Floor, property.Floors, property.YearBuilt,
		domain.JoinCommaList(property.Features), property.Images,
		property.Agent.Name, property.Agent.Phone, property.Agent.Email, property.Agent.Photo,
		property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save property", err, nil)
		return fmt.Errorf("failed to save property: %w", err)
	}

	repoLogger.Debug("Property saved successfully", nil)
	return nil
}

// Update перезаписывает все редактируемые поля объекта.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": property.ID.String(),
	})

	property.Geohash = encodeGeohash(property.Latitude, property.Longitude)

	query := `
		UPDATE properties SET
			title = $2, description = $3, price = $4, currency = $5, deal_type = $6,
			property_type = $7, status = $8,
			address = $9, city = $10, district = $11, latitude = $12, longitude = $13, geohash = $14,
			area_total = $15, rooms = $16, bedrooms = $17, bathrooms = $18,
			floor = $19, floors = $20, year_built = $21,
			features = $22, images = $23,
			agent_name = $24, agent_phone = $25, agent_email = $26, agent_photo = $27,
			updated_at = $28
		WHERE id = $1`

	repoLogger.Debug("Executing query to update property", nil)
	tag, err := r.pool.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Price, property.Currency,
		property.DealType, property.PropertyType, property.Status,
		property.Address, property.City, property.District, property.Latitude, property.Longitude, property.Geohash,
		property.AreaTotal, property.Rooms, property.Bedrooms, property.Bathrooms,
		property.Floor, property.Floors, property.YearBuilt,
		domain.JoinCommaList(property.Features), property.Images,
		property.Agent.Name, property.Agent.Phone, property.Agent.Email, property.Agent.Photo,
		property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}

// SetStatus меняет только статус объекта.
func (r *PropertyRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "SetStatus",
		"property_id": id.String(),
		"status":      status,
	})

	query := `UPDATE properties SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		repoLogger.Error("Failed to set property status", err, nil)
		return fmt.Errorf("failed to set property status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}

// scanProperty читает одну строку результата в доменную структуру.
func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	var features string
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Currency, &p.DealType, &p.PropertyType, &p.Status,
		&p.Address, &p.City, &p.District, &p.Latitude, &p.Longitude, &p.Geohash,
		&p.AreaTotal, &p.Rooms, &p.Bedrooms, &p.Bathrooms, &p.Floor, &p.Floors, &p.YearBuilt,
		&features, &p.Images,
		&p.Agent.Name, &p.Agent.Phone, &p.Agent.Email, &p.Agent.Photo,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Features = domain.SplitCommaList(features)
	return &p, nil
}
