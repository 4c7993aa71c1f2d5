package rest

import (
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- Недвижимость ---

type AgentDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

type PropertyResponseDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	DealType     string    `json:"dealType"`
	PropertyType string    `json:"propertyType"`
	Status       string    `json:"status"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	District     string    `json:"district,omitempty"`
	Latitude     float64   `json:"latitude,omitempty"`
	Longitude    float64   `json:"longitude,omitempty"`
	AreaTotal    float64   `json:"areaTotal,omitempty"`
	Rooms        int       `json:"rooms,omitempty"`
	Bedrooms     int       `json:"bedrooms,omitempty"`
	Bathrooms    int       `json:"bathrooms,omitempty"`
	Floor        int       `json:"floor,omitempty"`
	Floors       int       `json:"floors,omitempty"`
	YearBuilt    int       `json:"yearBuilt,omitempty"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	Agent        AgentDTO  `json:"agent"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PropertyListResponseDTO struct {
	Items      []PropertyResponseDTO `json:"items"`
	Pagination domain.PaginationInfo `json:"pagination"`
}

type PropertyRequestDTO struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	DealType     string   `json:"dealType"`
	PropertyType string   `json:"propertyType"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	AreaTotal    float64  `json:"areaTotal"`
	Rooms        int      `json:"rooms"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Floor        int      `json:"floor"`
	Floors       int      `json:"floors"`
	YearBuilt    int      `json:"yearBuilt"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Agent        AgentDTO `json:"agent"`
}

func toPropertyResponse(p *domain.Property) PropertyResponseDTO {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyResponseDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DealType:     p.DealType,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Address:      p.Address,
		City:         p.City,
		District:     p.District,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		AreaTotal:    p.AreaTotal,
		Rooms:        p.Rooms,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Floor:        p.Floor,
		Floors:       p.Floors,
		YearBuilt:    p.YearBuilt,
		Features:     features,
		Images:       images,
		Agent: AgentDTO{
			Name:  p.Agent.Name,
			Phone: p.Agent.Phone,
			Email: p.Agent.Email,
			Photo: p.Agent.Photo,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (dto *PropertyRequestDTO) toDomain() *domain.Property {
	return &domain.Property{
		Title:        dto.Title,
		Description:  dto.Description,
		Price:        dto.Price,
		Currency:     dto.Currency,
		DealType:     dto.DealType,
		PropertyType: dto.PropertyType,
		Status:       dto.Status,
		Address:      dto.Address,
		City:         dto.City,
		District:     dto.District,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		AreaTotal:    dto.AreaTotal,
		Rooms:        dto.Rooms,
		Bedrooms:     dto.Bedrooms,
		Bathrooms:    dto.Bathrooms,
		Floor:        dto.Floor,
		Floors:       dto.Floors,
		YearBuilt:    dto.YearBuilt,
		Features:     dto.Features,
		Images:       dto.Images,
		Agent: domain.Agent{
			Name:  dto.Agent.Name,
			Phone: dto.Agent.Phone,
			Email: dto.Agent.Email,
			Photo: dto.Agent.Photo,
		},
	}
}

// --- Блог ---

type BlogPostResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Content   string    `json:"content,omitempty"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	Author    string    `json:"author,omitempty"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BlogListResponseDTO struct {
	Items      []BlogPostResponseDTO `json:"items"`
	Pagination domain.PaginationInfo `json:"pagination"`
}

type BlogPostRequestDTO struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	CoverURL  string   `json:"coverUrl"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// toBlogPostResponse формирует ответ. includeContent=false для списков,
// где полный текст статьи не нужен.
func toBlogPostResponse(p *domain.BlogPost, includeContent bool) BlogPostResponseDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	dto := BlogPostResponseDTO{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		CoverURL:  p.CoverURL,
		Author:    p.Author,
		Tags:      tags,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if includeContent {
		dto.Content = p.Content
	}
	return dto
}

func (dto *BlogPostRequestDTO) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		Title:     dto.Title,
		Slug:      dto.Slug,
		Excerpt:   dto.Excerpt,
		Content:   dto.Content,
		CoverURL:  dto.CoverURL,
		Author:    dto.Author,
		Tags:      dto.Tags,
		Published: dto.Published,
	}
}

// --- Вакансии ---

type CareerPostingResponseDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department,omitempty"`
	Location     string    `json:"location"`
	Employment   string    `json:"employment,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CareerPostingRequestDTO struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Employment   string   `json:"employment"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Active       bool     `json:"active"`
}

type CareerApplicationRequestDTO struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ResumeURL string `json:"resumeUrl"`
}

type CareerApplicationResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	PostingID uuid.UUID `json:"postingId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	ResumeURL string    `json:"resumeUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCareerPostingResponse(p *domain.CareerPosting) CareerPostingResponseDTO {
	requirements := p.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return CareerPostingResponseDTO{
		ID:           p.ID,
		Title:        p.Title,
		Department:   p.Department,
		Location:     p.Location,
		Employment:   p.Employment,
		Description:  p.Description,
		Requirements: requirements,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
}

func (dto *CareerPostingRequestDTO) toDomain() *domain.CareerPosting {
	return &domain.CareerPosting{
		Title:        dto.Title,
		Department:   dto.Department,
		Location:     dto.Location,
		Employment:   dto.Employment,
		Description:  dto.Description,
		Requirements: dto.Requirements,
		Active:       dto.Active,
	}
}

func toCareerApplicationResponse(a *domain.CareerApplication) CareerApplicationResponseDTO {
	return CareerApplicationResponseDTO{
		ID:        a.ID,
		PostingID: a.PostingID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Message:   a.Message,
		ResumeURL: a.ResumeURL,
		CreatedAt: a.CreatedAt,
	}
}

// --- Лиды ---

type ViewingRequestDTO struct {
	PropertyID     uuid.UUID `json:"propertyId"`
	Title          string    `json:"title"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PreferredDate  string    `json:"preferredDate"`
	PreferredTime  string    `json:"preferredTime"`
	Message        string    `json:"message"`
	ReferralSource string    `json:"referralSource"`
}

type ViewingRequestResponseDTO struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"propertyId"`
	Title          string    `json:"title,omitempty"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PreferredDate  string    `json:"preferredDate,omitempty"`
	PreferredTime  string    `json:"preferredTime,omitempty"`
	Message        string    `json:"message,omitempty"`
	ReferralSource string    `json:"referralSource,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ContactRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactRequestResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// PrefillResponseDTO - данные для предзаполнения формы заявки из сессии.
// ReadOnly перечисляет поля, которые форма должна заблокировать от правки.
type PrefillResponseDTO struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	ReadOnly  []string `json:"readOnly"`
}

func toViewingRequestResponse(r *domain.ViewingRequest) ViewingRequestResponseDTO {
	return ViewingRequestResponseDTO{
		ID:             r.ID,
		PropertyID:     r.PropertyID,
		Title:          r.Title,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		PreferredDate:  r.PreferredDate,
		PreferredTime:  r.PreferredTime,
		Message:        r.Message,
		ReferralSource: r.ReferralSource,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func toContactRequestResponse(r *domain.ContactRequest) ContactRequestResponseDTO {
	return ContactRequestResponseDTO{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

// --- Аутентификация ---

type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponseDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
	Role  string    `json:"role"`
}

type AuthResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}

func toUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
