package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// fakePropertyRepo - настраиваемая заглушка PropertyRepositoryPort.
type fakePropertyRepo struct {
	findWithFiltersFunc func(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error)
	getByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	findSimilarFunc     func(ctx context.Context, geohashPrefix string, excludeID uuid.UUID, dealType string, limit int) ([]domain.Property, error)
	saveFunc            func(ctx context.Context, property *domain.Property) error
	updateFunc          func(ctx context.Context, property *domain.Property) error
	setStatusFunc       func(ctx context.Context, id uuid.UUID, status string) error
}

func (f *fakePropertyRepo) FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters) (*domain.PaginatedProperties, error) {
	return f.findWithFiltersFunc(ctx, filters)
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakePropertyRepo) FindSimilar(ctx context.Context, geohashPrefix string, excludeID uuid.UUID, dealType string, limit int) ([]domain.Property, error) {
	return f.findSimilarFunc(ctx, geohashPrefix, excludeID, dealType, limit)
}

func (f *fakePropertyRepo) Save(ctx context.Context, property *domain.Property) error {
	return f.saveFunc(ctx, property)
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	return f.updateFunc(ctx, property)
}

func (f *fakePropertyRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	return f.setStatusFunc(ctx, id, status)
}

// fakeLeadRepo запоминает сохраненные заявки.
type fakeLeadRepo struct {
	viewingRequests []domain.ViewingRequest
	contactRequests []domain.ContactRequest
	saveErr         error
}

func (f *fakeLeadRepo) SaveViewingRequest(ctx context.Context, request *domain.ViewingRequest) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.viewingRequests = append(f.viewingRequests, *request)
	return nil
}

func (f *fakeLeadRepo) SaveContactRequest(ctx context.Context, request *domain.ContactRequest) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.contactRequests = append(f.contactRequests, *request)
	return nil
}

func (f *fakeLeadRepo) FindViewingRequests(ctx context.Context, limit, offset int) ([]domain.ViewingRequest, int, error) {
	return f.viewingRequests, len(f.viewingRequests), nil
}

func (f *fakeLeadRepo) FindContactRequests(ctx context.Context, limit, offset int) ([]domain.ContactRequest, int, error) {
	return f.contactRequests, len(f.contactRequests), nil
}

// fakeLeadQueue собирает опубликованные события.
type fakeLeadQueue struct {
	published  []domain.LeadEvent
	publishErr error
}

func (f *fakeLeadQueue) PublishLeadEvent(ctx context.Context, event domain.LeadEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, event)
	return nil
}

// fakeUserRepo хранит пользователей в памяти с доступом по email и ID.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Save(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return domain.ErrEmailInUse
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// fakeTokenService выдает предсказуемые токены без криптографии.
type fakeTokenService struct {
	claims map[string]domain.Claims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{claims: make(map[string]domain.Claims)}
}

func (f *fakeTokenService) GenerateToken(claims domain.Claims) (string, error) {
	token := "token-" + claims.UserID.String()
	f.claims[token] = claims
	return token, nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims, ok := f.claims[tokenString]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return &claims, nil
}

// fakeCache - кэш в памяти без TTL.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.entries[key]
	return value, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(f.entries, key)
		}
	}
	return nil
}

// fakeMailer собирает отправленные письма.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (f *fakeMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// fakeCareerRepo хранит одну вакансию и записывает принятые отклики.
type fakeCareerRepo struct {
	posting      *domain.CareerPosting
	applications []*domain.CareerApplication
	saveErr      error
}

func (f *fakeCareerRepo) FindActive(ctx context.Context, locations []string) ([]domain.CareerPosting, error) {
	if f.posting == nil || !f.posting.Active {
		return nil, nil
	}
	return []domain.CareerPosting{*f.posting}, nil
}

func (f *fakeCareerRepo) FindAll(ctx context.Context) ([]domain.CareerPosting, error) {
	if f.posting == nil {
		return nil, nil
	}
	return []domain.CareerPosting{*f.posting}, nil
}

func (f *fakeCareerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerPosting, error) {
	if f.posting == nil || f.posting.ID != id {
		return nil, nil
	}
	return f.posting, nil
}

func (f *fakeCareerRepo) Save(ctx context.Context, posting *domain.CareerPosting) error {
	f.posting = posting
	return nil
}

func (f *fakeCareerRepo) Update(ctx context.Context, posting *domain.CareerPosting) error {
	f.posting = posting
	return nil
}

func (f *fakeCareerRepo) SaveApplication(ctx context.Context, application *domain.CareerApplication) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeCareerRepo) FindApplications(ctx context.Context, postingID uuid.UUID) ([]domain.CareerApplication, error) {
	result := make([]domain.CareerApplication, 0, len(f.applications))
	for _, a := range f.applications {
		if a.PostingID == postingID {
			result = append(result, *a)
		}
	}
	return result, nil
}

// fakeImageStorage запоминает загруженные ключи и отдает предсказуемый URL.
type fakeImageStorage struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
}

func (f *fakeImageStorage) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeImageStorage) Delete(ctx context.Context, imageURL string) error {
	key, ok := strings.CutPrefix(imageURL, "https://cdn.example.com/")
	if !ok {
		return nil
	}
	delete(f.uploads, key)
	f.deleted = append(f.deleted, imageURL)
	return nil
}
