package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type RegisterUserUseCase struct {
	userRepo port.UserRepositoryPort
	tokenSvc port.TokenServicePort
}

func NewRegisterUserUseCase(userRepo port.UserRepositoryPort, tokenSvc port.TokenServicePort) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, tokenSvc: tokenSvc}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, name, email, phone, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    email,
	})

	ucLogger.Info("Use case started: attempting to register user", nil)

	var details []string
	if name == "" {
		details = append(details, "Name is required")
	}
	if email == "" {
		details = append(details, "Email is required")
	}
	if len(password) < 8 {
		details = append(details, "Password must be at least 8 characters long")
	}
	if len(details) > 0 {
		ucLogger.Warn("Registration input invalid", nil)
		return nil, "", domain.NewValidationError(details)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed while checking for existing email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if existingUser != nil {
		ucLogger.Warn("Registration failed: email already in use", nil)
		return nil, "", domain.ErrEmailInUse
	}

	// Хэширование пароля происходит внутри NewUser
	user, err := domain.NewUser(name, email, phone, password, domain.RoleUser)
	if err != nil {
		ucLogger.Error("Failed to create new user domain object", err, nil)
		return nil, "", err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"user_id": user.ID.String()})

	if err := uc.userRepo.Save(ctx, user); err != nil {
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, "", err
	}

	// Сразу после создания пользователя генерируем для него токен
	token, err := uc.tokenSvc.GenerateToken(domain.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
	})
	if err != nil {
		ucLogger.Error("Failed to generate token after successful registration", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user registered successfully", nil)
	return user, token, nil
}
