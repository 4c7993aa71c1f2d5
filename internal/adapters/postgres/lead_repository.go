package postgres

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LeadRepository - реализация LeadRepositoryPort для PostgreSQL.
type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) (*LeadRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &LeadRepository{pool: pool}, nil
}

// SaveViewingRequest сохраняет заявку на просмотр.
func (r *LeadRepository) SaveViewingRequest(ctx context.Context, request *domain.ViewingRequest) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "LeadRepository",
		"method":     "SaveViewingRequest",
		"request_id": request.ID.String(),
	})

	query := `
		INSERT INTO viewing_requests (id, property_id, title, first_name, last_name, email, phone, preferred_date, preferred_time, message, referral_source, status, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, NULLIF($11, ''), $12, $13)`

	repoLogger.Debug("Executing query to save viewing request", nil)
	_, err := r.pool.Exec(ctx, query,
		request.ID, request.PropertyID, request.Title, request.FirstName, request.LastName,
		request.Email, request.Phone, request.PreferredDate, request.PreferredTime,
		request.Message, request.ReferralSource, request.Status, request.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save viewing request", err, nil)
		return fmt.Errorf("failed to save viewing request: %w", err)
	}
	return nil
}

// SaveContactRequest сохраняет обращение из контактной формы.
func (r *LeadRepository) SaveContactRequest(ctx context.Context, request *domain.ContactRequest) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "LeadRepository",
		"method":     "SaveContactRequest",
		"request_id": request.ID.String(),
	})

	query := `
		INSERT INTO contact_requests (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	repoLogger.Debug("Executing query to save contact request", nil)
	_, err := r.pool.Exec(ctx, query,
		request.ID, request.Name, request.Email, request.Phone,
		request.Subject, request.Message, request.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save contact request", err, nil)
		return fmt.Errorf("failed to save contact request: %w", err)
	}
	return nil
}

// FindViewingRequests возвращает страницу заявок на просмотр, новые первыми.
func (r *LeadRepository) FindViewingRequests(ctx context.Context, limit, offset int) ([]domain.ViewingRequest, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM viewing_requests`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count viewing requests: %w", err)
	}
	if total == 0 {
		return []domain.ViewingRequest{}, 0, nil
	}

	query := `
		SELECT id, property_id, COALESCE(title, ''), first_name, last_name, email, phone,
		       COALESCE(preferred_date, ''), COALESCE(preferred_time, ''), message,
		       COALESCE(referral_source, ''), status, created_at
		FROM viewing_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := tx.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find viewing requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.ViewingRequest, 0, limit)
	for rows.Next() {
		var req domain.ViewingRequest
		if err := rows.Scan(
			&req.ID, &req.PropertyID, &req.Title, &req.FirstName, &req.LastName, &req.Email, &req.Phone,
			&req.PreferredDate, &req.PreferredTime, &req.Message,
			&req.ReferralSource, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan viewing request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, tx.Commit(ctx)
}

// FindContactRequests возвращает страницу обращений, новые первыми.
func (r *LeadRepository) FindContactRequests(ctx context.Context, limit, offset int) ([]domain.ContactRequest, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM contact_requests`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact requests: %w", err)
	}
	if total == 0 {
		return []domain.ContactRequest{}, 0, nil
	}

	query := `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := tx.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find contact requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.ContactRequest, 0, limit)
	for rows.Next() {
		var req domain.ContactRequest
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.Subject, &req.Message, &req.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, tx.Commit(ctx)
}
