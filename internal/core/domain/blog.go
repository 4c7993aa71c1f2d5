package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// BlogPost - статья блога. Slug уникален и используется как публичный идентификатор.
type BlogPost struct {
	ID        uuid.UUID
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	CoverURL  string
	Author    string
	Tags      []string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveSlug строит slug из заголовка: нижний регистр, только [a-z0-9],
// остальное схлопывается в дефисы.
func DeriveSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ValidateNew проверяет обязательные поля статьи перед сохранением.
func (b *BlogPost) ValidateNew() error {
	var details []string
	if strings.TrimSpace(b.Title) == "" {
		details = append(details, "Title is required")
	}
	if strings.TrimSpace(b.Content) == "" {
		details = append(details, "Content is required")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}
