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

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

// Save создает нового пользователя в БД.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Save",
		"user_id":   user.ID.String(),
		"email":     user.Email,
	})

	query := `INSERT INTO users (id, name, email, phone, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	repoLogger.Debug("Executing query to create user.", nil)
	_, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailInUse
		}
		repoLogger.Error("Failed to create user", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", nil)
	return nil
}

// GetByEmail находит пользователя по email.
// Возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, phone, password_hash, role, created_at FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByID находит пользователя по идентификатору.
// Возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, name, email, phone, password_hash, role, created_at FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
