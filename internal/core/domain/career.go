package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Типы занятости в вакансиях.
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
)

// CareerPosting - вакансия, опубликованная на сайте.
type CareerPosting struct {
	ID           uuid.UUID
	Title        string
	Department   string
	Location     string
	Employment   string
	Description  string
	Requirements []string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidateNew проверяет обязательные поля вакансии.
func (p *CareerPosting) ValidateNew() error {
	var details []string
	if strings.TrimSpace(p.Title) == "" {
		details = append(details, "Title is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		details = append(details, "Location is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		details = append(details, "Description is required")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}

// CareerApplication - отклик кандидата на вакансию.
type CareerApplication struct {
	ID        uuid.UUID
	PostingID uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	ResumeURL string
	CreatedAt time.Time
}

// Validate накапливает все нарушения правил формы отклика.
func (a *CareerApplication) Validate() error {
	var details []string
	if strings.TrimSpace(a.Name) == "" {
		details = append(details, "Name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		details = append(details, "Email is required")
	} else if !emailPattern.MatchString(a.Email) {
		details = append(details, "Email format is invalid")
	}
	if a.Phone != "" && !isValidPhone(a.Phone) {
		details = append(details, "Phone number must contain 10 to 15 digits")
	}
	if strings.TrimSpace(a.Message) == "" {
		details = append(details, "Message is required")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}
