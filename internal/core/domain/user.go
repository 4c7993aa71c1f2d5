package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей. Админская роль открывает доступ к CRUD контента.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User - основная доменная сущность
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string // Может быть пустым (например, OAuth-регистрация без телефона)
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Claims - это данные, которые мы "зашиваем" в JWT токен.
type Claims struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
	Role   string
}

// NewUser создает нового пользователя. Хэширование пароля происходит здесь.
func NewUser(name, email, phone, password, role string) (*User, error) {
	// bcrypt.DefaultCost - это хороший баланс между скоростью и безопасностью.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword сравнивает предоставленный пароль с хэшем, хранящимся у пользователя.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SplitName разбивает полное имя сессии на имя и фамилию для предзаполнения
// формы заявки на просмотр. Все, что после первого пробела, уходит в фамилию.
func (c *Claims) SplitName() (firstName, lastName string) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	firstName = parts[0]
	if len(parts) > 1 {
		lastName = strings.TrimSpace(parts[1])
	}
	return firstName, lastName
}
