package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, name, email, phone, password string) (*domain.User, string, error)
}

type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}

type ValidateTokenUseCase interface {
	Execute(ctx context.Context, tokenString string) (*domain.Claims, error)
}

type GetCurrentUserUseCase interface {
	Execute(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}
