package token_adapter

import (
	"errors"
	"fmt"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService - реализация TokenServicePort для JWT.
type TokenService struct {
	// Секретный ключ для подписи токенов. Хранится в конфиге.
	signingKey []byte
	ttl        time.Duration
}

func NewTokenService(signingKey string, ttl time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl}, nil
}

// jwtCustomClaims - наша реализация стандартных claims JWT.
type jwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone,omitempty"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken создает новый JWT токен, подписанный HS256.
func (s *TokenService) GenerateToken(claims domain.Claims) (string, error) {
	now := time.Now()
	tokenClaims := &jwtCustomClaims{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Phone:  claims.Phone,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "brokerage-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)

	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

// ValidateToken проверяет подпись и срок действия токена.
func (s *TokenService) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Защита от подмены алгоритма подписи
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Phone:  claims.Phone,
		Role:   claims.Role,
	}, nil
}
