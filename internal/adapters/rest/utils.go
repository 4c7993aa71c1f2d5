package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"brokerage-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteValidationError отправляет ответ 422 с общим сообщением и списком нарушений
func WriteValidationError(w http.ResponseWriter, details []string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   "Validation failed",
		"details": details,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// HandleDomainError переводит доменные ошибки в HTTP-статусы.
// Возвращает true, если ошибка была обработана.
func HandleDomainError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteValidationError(w, validationErr.Details)
		return true
	}

	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, domain.ErrBlogPostNotFound):
		WriteJSONError(w, http.StatusNotFound, "Blog post not found")
	case errors.Is(err, domain.ErrPostingNotFound):
		WriteJSONError(w, http.StatusNotFound, "Career posting not found")
	case errors.Is(err, domain.ErrUserNotFound):
		WriteJSONError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrSlugInUse):
		WriteJSONError(w, http.StatusConflict, "Slug is already in use")
	case errors.Is(err, domain.ErrEmailInUse):
		WriteJSONError(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrTokenInvalid):
		WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
	return true
}

func GetLimitOrDefault(r *http.Request, defaultLimit int) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	limit := defaultLimit
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return 0, errors.New("limit must be a positive integer")
		}
	}
	return limit, nil
}

func GetOffsetOrDefault(r *http.Request) (int, error) {
	offsetStr := r.URL.Query().Get("offset")
	offset := 0
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, errors.New("offset must be a non-negative integer")
		}
	}
	return offset, nil
}
