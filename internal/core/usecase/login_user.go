package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type LoginUserUseCase struct {
	userRepo port.UserRepositoryPort
	tokenSvc port.TokenServicePort
}

func NewLoginUserUseCase(userRepo port.UserRepositoryPort, tokenSvc port.TokenServicePort) *LoginUserUseCase {
	return &LoginUserUseCase{userRepo: userRepo, tokenSvc: tokenSvc}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})

	ucLogger.Info("Use case started: attempting to log in", nil)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed while fetching user", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	// Одинаковая ошибка для "нет пользователя" и "неверный пароль",
	// чтобы не раскрывать, какие email зарегистрированы
	if user == nil {
		ucLogger.Warn("Login failed: user not found", nil)
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		ucLogger.Warn("Login failed: invalid password", port.Fields{"user_id": user.ID.String()})
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(domain.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
	})
	if err != nil {
		ucLogger.Error("Failed to generate token", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user logged in", port.Fields{"user_id": user.ID.String()})
	return user, token, nil
}
