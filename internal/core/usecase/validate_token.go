package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ValidateTokenUseCase struct {
	tokenSvc port.TokenServicePort
}

func NewValidateTokenUseCase(tokenSvc port.TokenServicePort) *ValidateTokenUseCase {
	return &ValidateTokenUseCase{tokenSvc: tokenSvc}
}

func (uc *ValidateTokenUseCase) Execute(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ValidateToken"})

	claims, err := uc.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		ucLogger.Debug("Token validation failed", port.Fields{"error": err.Error()})
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
