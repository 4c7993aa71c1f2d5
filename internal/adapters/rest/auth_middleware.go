package rest

import (
	"net/http"
	"strings"

	"brokerage-service/internal/contextkeys"
	usecases_port "brokerage-service/internal/core/port/usecases_port"
)

type AuthMiddleware struct {
	validateToken usecases_port.ValidateTokenUseCase
}

func NewAuthMiddleware(validateToken usecases_port.ValidateTokenUseCase) *AuthMiddleware {
	return &AuthMiddleware{validateToken: validateToken}
}

// Authenticate - middleware для проверки JWT из заголовка Authorization
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := am.validateToken.Execute(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Кладем claims в контекст для следующих обработчиков
		ctx := contextkeys.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole - middleware для проверки роли пользователя.
// Должен стоять после Authenticate.
func (am *AuthMiddleware) RequireRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := contextkeys.ClaimsFromContext(r.Context())
			if claims == nil {
				WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if claims.Role != requiredRole {
				WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
