package rest

import (
	"encoding/json"
	"net/http"

	"brokerage-service/internal/contextkeys"
	usecases_port "brokerage-service/internal/core/port/usecases_port"
)

type AuthHandler struct {
	registerUseCase usecases_port.RegisterUserUseCase
	loginUseCase    usecases_port.LoginUserUseCase
	currentUseCase  usecases_port.GetCurrentUserUseCase
}

func NewAuthHandler(
	registerUseCase usecases_port.RegisterUserUseCase,
	loginUseCase usecases_port.LoginUserUseCase,
	currentUseCase usecases_port.GetCurrentUserUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		currentUseCase:  currentUseCase,
	}
}

// Register обрабатывает POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.registerUseCase.Execute(r.Context(), dto.Name, dto.Email, dto.Phone, dto.Password)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, AuthResponseDTO{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Login обрабатывает POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.loginUseCase.Execute(r.Context(), dto.Email, dto.Password)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponseDTO{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Me обрабатывает GET /auth/me - профиль текущего пользователя.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := h.currentUseCase.Execute(r.Context(), claims)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(user))
}
