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

const postingColumns = `id, title, department, location, employment, description, requirements, active, created_at, updated_at`

// CareerRepository - реализация CareerRepositoryPort для PostgreSQL.
type CareerRepository struct {
	pool *pgxpool.Pool
}

func NewCareerRepository(pool *pgxpool.Pool) (*CareerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CareerRepository{pool: pool}, nil
}

// FindActive возвращает активные вакансии, опционально отфильтрованные по городам.
func (r *CareerRepository) FindActive(ctx context.Context, locations []string) ([]domain.CareerPosting, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CareerRepository",
		"method":    "FindActive",
		"locations": locations,
	})

	query := fmt.Sprintf("SELECT %s FROM career_postings WHERE active = true", postingColumns)
	args := []interface{}{}
	if len(locations) > 0 {
		query += " AND location = ANY($1)"
		args = append(args, locations)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to find career postings", err, nil)
		return nil, fmt.Errorf("failed to find career postings: %w", err)
	}
	defer rows.Close()

	return scanPostings(rows)
}

// FindAll возвращает все вакансии, включая снятые с публикации.
func (r *CareerRepository) FindAll(ctx context.Context) ([]domain.CareerPosting, error) {
	query := fmt.Sprintf("SELECT %s FROM career_postings ORDER BY created_at DESC", postingColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find career postings: %w", err)
	}
	defer rows.Close()

	return scanPostings(rows)
}

// GetByID возвращает вакансию. (nil, nil), если вакансия не найдена.
func (r *CareerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerPosting, error) {
	query := fmt.Sprintf("SELECT %s FROM career_postings WHERE id = $1", postingColumns)

	var p domain.CareerPosting
	var requirements string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Department, &p.Location, &p.Employment,
		&p.Description, &requirements, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career posting: %w", err)
	}
	p.Requirements = domain.SplitCommaList(requirements)
	return &p, nil
}

// Save сохраняет новую вакансию.
func (r *CareerRepository) Save(ctx context.Context, posting *domain.CareerPosting) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CareerRepository",
		"method":     "Save",
		"posting_id": posting.ID.String(),
	})

	query := `
		INSERT INTO career_postings (id, title, department, location, employment, description, requirements, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	repoLogger.Debug("Executing query to save career posting", nil)
	_, err := r.pool.Exec(ctx, query,
		posting.ID, posting.Title, posting.Department, posting.Location, posting.Employment,
		posting.Description, domain.JoinCommaList(posting.Requirements), posting.Active,
		posting.CreatedAt, posting.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save career posting", err, nil)
		return fmt.Errorf("failed to save career posting: %w", err)
	}
	return nil
}

// Update перезаписывает редактируемые поля вакансии.
func (r *CareerRepository) Update(ctx context.Context, posting *domain.CareerPosting) error {
	query := `
		UPDATE career_postings SET
			title = $2, department = $3, location = $4, employment = $5,
			description = $6, requirements = $7, active = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		posting.ID, posting.Title, posting.Department, posting.Location, posting.Employment,
		posting.Description, domain.JoinCommaList(posting.Requirements), posting.Active, posting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update career posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostingNotFound
	}
	return nil
}

// SaveApplication сохраняет отклик кандидата.
func (r *CareerRepository) SaveApplication(ctx context.Context, application *domain.CareerApplication) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":      "CareerRepository",
		"method":         "SaveApplication",
		"application_id": application.ID.String(),
	})

	query := `
		INSERT INTO career_applications (id, posting_id, name, email, phone, message, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	repoLogger.Debug("Executing query to save application", nil)
	_, err := r.pool.Exec(ctx, query,
		application.ID, application.PostingID, application.Name, application.Email,
		application.Phone, application.Message, application.ResumeURL, application.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save application", err, nil)
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

// FindApplications возвращает отклики на вакансию, новые первыми.
func (r *CareerRepository) FindApplications(ctx context.Context, postingID uuid.UUID) ([]domain.CareerApplication, error) {
	query := `
		SELECT id, posting_id, name, email, phone, message, resume_url, created_at
		FROM career_applications
		WHERE posting_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	defer rows.Close()

	applications := make([]domain.CareerApplication, 0)
	for rows.Next() {
		var a domain.CareerApplication
		if err := rows.Scan(&a.ID, &a.PostingID, &a.Name, &a.Email, &a.Phone, &a.Message, &a.ResumeURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func scanPostings(rows pgx.Rows) ([]domain.CareerPosting, error) {
	postings := make([]domain.CareerPosting, 0)
	for rows.Next() {
		var p domain.CareerPosting
		var requirements string
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Department, &p.Location, &p.Employment,
			&p.Description, &requirements, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan career posting: %w", err)
		}
		p.Requirements = domain.SplitCommaList(requirements)
		postings = append(postings, p)
	}
	return postings, rows.Err()
}
