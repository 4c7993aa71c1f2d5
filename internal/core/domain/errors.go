package domain

import (
	"errors"
	"strings"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrSlugInUse          = errors.New("slug already in use")
	ErrPostingNotFound    = errors.New("career posting not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid jwt token")
)

// ValidationError накапливает ВСЕ нарушенные правила одной отправки формы.
// Ни одно правило не проверяется "до первой ошибки" - пользователь должен
// увидеть полный список проблем за один раз.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// NewValidationError создает ошибку валидации из списка нарушений.
func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}
