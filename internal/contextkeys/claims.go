package contextkeys

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// Тип для ключа контекста
type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

// ContextWithClaims помещает данные сессии (claims токена) в контекст.
func ContextWithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext извлекает claims из контекста.
// Возвращает nil, если запрос анонимный.
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	if claims, ok := ctx.Value(claimsKey).(*domain.Claims); ok {
		return claims
	}
	return nil
}
