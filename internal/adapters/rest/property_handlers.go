package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"brokerage-service/internal/core/domain"
	usecases_port "brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	findUseCase      usecases_port.FindPropertiesUseCase
	detailsUseCase   usecases_port.GetPropertyDetailsUseCase
	similarUseCase   usecases_port.FindSimilarPropertiesUseCase
	createUseCase    usecases_port.CreatePropertyUseCase
	updateUseCase    usecases_port.UpdatePropertyUseCase
	setStatusUseCase usecases_port.SetPropertyStatusUseCase
}

func NewPropertyHandler(
	findUseCase usecases_port.FindPropertiesUseCase,
	detailsUseCase usecases_port.GetPropertyDetailsUseCase,
	similarUseCase usecases_port.FindSimilarPropertiesUseCase,
	createUseCase usecases_port.CreatePropertyUseCase,
	updateUseCase usecases_port.UpdatePropertyUseCase,
	setStatusUseCase usecases_port.SetPropertyStatusUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		findUseCase:      findUseCase,
		detailsUseCase:   detailsUseCase,
		similarUseCase:   similarUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		setStatusUseCase: setStatusUseCase,
	}
}

// FindProperties обрабатывает GET /properties - публичный каталог с фильтрами.
// Параметр status здесь не принимается: снятые с публикации объекты
// доступны только через админский каталог.
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	filters, err := parsePropertyFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	active := domain.PropertyStatusActive
	filters.Status = &active

	result, err := h.findUseCase.Execute(r.Context(), *filters)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]PropertyResponseDTO, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toPropertyResponse(&result.Items[i]))
	}

	RespondWithJSON(w, http.StatusOK, PropertyListResponseDTO{
		Items:      items,
		Pagination: result.Pagination,
	})
}

// AdminFindProperties обрабатывает GET /admin/properties - каталог без
// ограничения по статусу.
func (h *PropertyHandler) AdminFindProperties(w http.ResponseWriter, r *http.Request) {
	filters, err := parsePropertyFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filters.Status == nil {
		all := ""
		filters.Status = &all // пустая строка отключает фильтр по статусу
	}

	result, err := h.findUseCase.Execute(r.Context(), *filters)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]PropertyResponseDTO, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toPropertyResponse(&result.Items[i]))
	}

	RespondWithJSON(w, http.StatusOK, PropertyListResponseDTO{
		Items:      items,
		Pagination: result.Pagination,
	})
}

// GetPropertyDetails обрабатывает GET /properties/{propertyID}.
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.detailsUseCase.Execute(r.Context(), propertyID)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// FindSimilar обрабатывает GET /properties/{propertyID}/similar.
func (h *PropertyHandler) FindSimilar(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	limit, err := GetLimitOrDefault(r, 4)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	similar, err := h.similarUseCase.Execute(r.Context(), propertyID, limit)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]PropertyResponseDTO, 0, len(similar))
	for i := range similar {
		items = append(items, toPropertyResponse(&similar[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// CreateProperty обрабатывает POST /admin/properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var dto PropertyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	property, err := h.createUseCase.Execute(r.Context(), dto.toDomain())
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(property))
}

// UpdateProperty обрабатывает PUT /admin/properties/{propertyID}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var dto PropertyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	property := dto.toDomain()
	property.ID = propertyID

	updated, err := h.updateUseCase.Execute(r.Context(), property)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(updated))
}

// SetPropertyStatus обрабатывает PATCH /admin/properties/{propertyID}/status.
func (h *PropertyHandler) SetPropertyStatus(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var dto struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.setStatusUseCase.Execute(r.Context(), propertyID, dto.Status); HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": dto.Status})
}

// parsePropertyFilters разбирает query-параметры каталога.
func parsePropertyFilters(r *http.Request) (*domain.FindPropertiesFilters, error) {
	q := r.URL.Query()
	filters := &domain.FindPropertiesFilters{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	filters.City = stringPtr(q.Get("city"))
	filters.District = stringPtr(q.Get("district"))
	filters.DealType = stringPtr(q.Get("dealType"))
	filters.PropertyType = stringPtr(q.Get("propertyType"))
	filters.Status = stringPtr(q.Get("status"))
	filters.Search = stringPtr(q.Get("search"))

	var err error
	if filters.MinPrice, err = floatPtr(q.Get("minPrice")); err != nil {
		return nil, err
	}
	if filters.MaxPrice, err = floatPtr(q.Get("maxPrice")); err != nil {
		return nil, err
	}
	if filters.MinArea, err = floatPtr(q.Get("minArea")); err != nil {
		return nil, err
	}
	if filters.MaxArea, err = floatPtr(q.Get("maxArea")); err != nil {
		return nil, err
	}
	if filters.MinRooms, err = intPtr(q.Get("minRooms")); err != nil {
		return nil, err
	}
	if filters.MaxRooms, err = intPtr(q.Get("maxRooms")); err != nil {
		return nil, err
	}

	if filters.Limit, err = GetLimitOrDefault(r, 12); err != nil {
		return nil, err
	}
	if filters.Offset, err = GetOffsetOrDefault(r); err != nil {
		return nil, err
	}

	return filters, nil
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatPtr(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func intPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
