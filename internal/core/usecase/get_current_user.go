package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type GetCurrentUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetCurrentUserUseCase(userRepo port.UserRepositoryPort) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetCurrentUser",
		"user_id":  claims.UserID.String(),
	})

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		ucLogger.Warn("User from token no longer exists", nil)
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
