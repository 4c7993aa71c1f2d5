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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = `id, title, slug, excerpt, content, cover_url, author, tags, published, created_at, updated_at`

// BlogRepository - реализация BlogRepositoryPort для PostgreSQL.
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) (*BlogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BlogRepository{pool: pool}, nil
}

// FindPublished возвращает страницу опубликованных статей, опционально по тегу.
func (r *BlogRepository) FindPublished(ctx context.Context, tag string, limit, offset int) ([]domain.BlogPost, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "FindPublished",
		"tag":       tag,
	})

	conditions := "WHERE published = true"
	args := []interface{}{}
	if tag != "" {
		conditions += " AND $1 = ANY(tags)"
		args = append(args, tag)
	}

	return r.findPage(ctx, repoLogger, conditions, args, limit, offset)
}

// FindAll возвращает страницу всех статей, включая черновики (для админки).
func (r *BlogRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.BlogPost, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "FindAll",
	})
	return r.findPage(ctx, repoLogger, "", nil, limit, offset)
}

func (r *BlogRepository) findPage(ctx context.Context, repoLogger port.LoggerPort, whereClause string, args []interface{}, limit, offset int) ([]domain.BlogPost, int, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM blog_posts %s", whereClause)
	var total int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count blog posts", err, nil)
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	if total == 0 {
		return []domain.BlogPost{}, 0, nil
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM blog_posts %s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d",
		blogColumns, whereClause, len(args)+1, len(args)+2,
	)
	rows, err := tx.Query(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		repoLogger.Error("Failed to find blog posts", err, nil)
		return nil, 0, fmt.Errorf("failed to find blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0, limit)
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverURL, &p.Author, &p.Tags, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read blog post rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Successfully found blog posts", port.Fields{"total": total, "count": len(posts)})
	return posts, total, nil
}

// GetBySlug возвращает статью по slug. (nil, nil), если статья не найдена.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := fmt.Sprintf("SELECT %s FROM blog_posts WHERE slug = $1", blogColumns)
	return r.getOne(ctx, query, slug)
}

// GetByID возвращает статью по идентификатору. (nil, nil), если статья не найдена.
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	query := fmt.Sprintf("SELECT %s FROM blog_posts WHERE id = $1", blogColumns)
	return r.getOne(ctx, query, id)
}

func (r *BlogRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverURL, &p.Author, &p.Tags, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return &p, nil
}

// Save сохраняет новую статью. Конфликт по slug превращается в доменную ошибку.
func (r *BlogRepository) Save(ctx context.Context, post *domain.BlogPost) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "Save",
		"post_id":   post.ID.String(),
	})

	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, cover_url, author, tags, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	repoLogger.Debug("Executing query to save blog post", nil)
	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL,
		post.Author, post.Tags, post.Published, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugInUse
		}
		repoLogger.Error("Failed to save blog post", err, nil)
		return fmt.Errorf("failed to save blog post: %w", err)
	}

	return nil
}

// Update перезаписывает редактируемые поля статьи.
func (r *BlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "Update",
		"post_id":   post.ID.String(),
	})

	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, excerpt = $4, content = $5, cover_url = $6,
			author = $7, tags = $8, published = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL,
		post.Author, post.Tags, post.Published, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugInUse
		}
		repoLogger.Error("Failed to update blog post", err, nil)
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBlogPostNotFound
	}

	return nil
}

// Delete удаляет статью.
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}

// isUniqueViolation распознает код 23505 (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
