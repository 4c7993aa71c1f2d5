package port

import (
	"brokerage-service/internal/core/domain"
)

type TokenServicePort interface {
	GenerateToken(claims domain.Claims) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}
