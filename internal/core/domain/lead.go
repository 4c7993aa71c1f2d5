package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Допустимые значения предпочтительного времени просмотра.
const (
	PreferredTimeMorning   = "morning"
	PreferredTimeAfternoon = "afternoon"
	PreferredTimeAllDay    = "all-day"
)

// Типы лидов. Попадают в routing key событий RabbitMQ.
const (
	LeadTypeViewing = "viewing"
	LeadTypeContact = "contact"
	LeadTypeCareer  = "career"
)

// ViewingStatusNew - статус, с которым заявка попадает в список на разбор.
// Других переходов статуса в системе нет.
const ViewingStatusNew = "new"

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ViewingRequest - заявка на просмотр объекта недвижимости.
type ViewingRequest struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	Title          string // Обращение: Mr, Mrs и т.п. Необязательно.
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	PreferredDate  string // YYYY-MM-DD
	PreferredTime  string
	Message        string
	ReferralSource string
	Status         string
	CreatedAt      time.Time
}

// Validate проверяет все правила формы заявки и накапливает нарушения.
// now нужен для проверки, что дата просмотра не в прошлом.
func (r *ViewingRequest) Validate(now time.Time) error {
	var details []string
	if strings.TrimSpace(r.FirstName) == "" {
		details = append(details, "First name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		details = append(details, "Last name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		details = append(details, "Email is required")
	} else if !emailPattern.MatchString(r.Email) {
		details = append(details, "Email format is invalid")
	}
	if strings.TrimSpace(r.Phone) == "" {
		details = append(details, "Phone number is required")
	} else if !isValidPhone(r.Phone) {
		details = append(details, "Phone number must contain 10 to 15 digits")
	}
	if r.PreferredDate == "" {
		details = append(details, "Preferred date is required")
	} else {
		date, err := time.Parse("2006-01-02", r.PreferredDate)
		if err != nil {
			details = append(details, "Preferred date must be in YYYY-MM-DD format")
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if date.Before(today) {
				details = append(details, "Preferred date must not be in the past")
			}
		}
	}
	if r.PreferredTime != "" && !isValidPreferredTime(r.PreferredTime) {
		details = append(details, "Preferred time must be one of: morning, afternoon, all-day")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}

func isValidPreferredTime(pt string) bool {
	switch pt {
	case PreferredTimeMorning, PreferredTimeAfternoon, PreferredTimeAllDay:
		return true
	}
	return false
}

// isValidPhone убирает все нецифровые символы и проверяет длину (10-15 цифр).
func isValidPhone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// NormalizePhone приводит телефон к виду "только цифры" для хранения.
func NormalizePhone(phone string) string {
	return nonDigitPattern.ReplaceAllString(phone, "")
}

// ContactRequest - обращение через общую контактную форму.
type ContactRequest struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Validate накапливает нарушения правил контактной формы.
func (r *ContactRequest) Validate() error {
	var details []string
	if strings.TrimSpace(r.Name) == "" {
		details = append(details, "Name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		details = append(details, "Email is required")
	} else if !emailPattern.MatchString(r.Email) {
		details = append(details, "Email format is invalid")
	}
	if r.Phone != "" && !isValidPhone(r.Phone) {
		details = append(details, "Phone number must contain 10 to 15 digits")
	}
	if strings.TrimSpace(r.Message) == "" {
		details = append(details, "Message is required")
	}
	if len(details) > 0 {
		return NewValidationError(details)
	}
	return nil
}

// LeadEvent - событие нового лида, публикуемое в RabbitMQ для почтовых уведомлений.
type LeadEvent struct {
	LeadID     uuid.UUID `json:"leadId"`
	LeadType   string    `json:"leadType"`
	PropertyID string    `json:"propertyId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
