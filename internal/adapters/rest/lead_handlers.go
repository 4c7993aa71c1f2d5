package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	usecases_port "brokerage-service/internal/core/port/usecases_port"
)

type LeadHandler struct {
	viewingUseCase usecases_port.SubmitViewingRequestUseCase
	contactUseCase usecases_port.SubmitContactRequestUseCase
	slotsUseCase   usecases_port.GetViewingSlotsUseCase
	listUseCase    usecases_port.ListLeadsUseCase
}

func NewLeadHandler(
	viewingUseCase usecases_port.SubmitViewingRequestUseCase,
	contactUseCase usecases_port.SubmitContactRequestUseCase,
	slotsUseCase usecases_port.GetViewingSlotsUseCase,
	listUseCase usecases_port.ListLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		viewingUseCase: viewingUseCase,
		contactUseCase: contactUseCase,
		slotsUseCase:   slotsUseCase,
		listUseCase:    listUseCase,
	}
}

// SubmitViewingRequest обрабатывает POST /viewing-requests.
func (h *LeadHandler) SubmitViewingRequest(w http.ResponseWriter, r *http.Request) {
	var dto ViewingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	request := &domain.ViewingRequest{
		PropertyID:     dto.PropertyID,
		Title:          dto.Title,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		PreferredDate:  dto.PreferredDate,
		PreferredTime:  dto.PreferredTime,
		Message:        dto.Message,
		ReferralSource: dto.ReferralSource,
	}

	saved, err := h.viewingUseCase.Execute(r.Context(), request)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toViewingRequestResponse(saved))
}

// SubmitContactRequest обрабатывает POST /contact-requests.
func (h *LeadHandler) SubmitContactRequest(w http.ResponseWriter, r *http.Request) {
	var dto ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	request := &domain.ContactRequest{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Subject: dto.Subject,
		Message: dto.Message,
	}

	saved, err := h.contactUseCase.Execute(r.Context(), request)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toContactRequestResponse(saved))
}

// GetViewingSlots обрабатывает GET /viewing-slots?year=2026&month=8 -
// календарная сетка месяца для выбора даты просмотра. Без параметров
// возвращается текущий месяц.
func (h *LeadHandler) GetViewingSlots(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		v, err := strconv.Atoi(yearStr)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Year must be an integer")
			return
		}
		year = v
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		v, err := strconv.Atoi(monthStr)
		if err != nil || v < 1 || v > 12 {
			WriteJSONError(w, http.StatusBadRequest, "Month must be an integer between 1 and 12")
			return
		}
		month = time.Month(v)
	}

	grid, err := h.slotsUseCase.Execute(r.Context(), year, month)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, grid)
}

// GetPrefill обрабатывает GET /viewing-requests/prefill - данные
// авторизованного пользователя для предзаполнения формы. Имя сессии
// разбивается на имя и фамилию.
func (h *LeadHandler) GetPrefill(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	firstName, lastName := claims.SplitName()
	readOnly := []string{"firstName", "lastName", "email"}
	if claims.Phone != "" {
		readOnly = append(readOnly, "phone")
	}
	RespondWithJSON(w, http.StatusOK, PrefillResponseDTO{
		FirstName: firstName,
		LastName:  lastName,
		Email:     claims.Email,
		Phone:     claims.Phone,
		ReadOnly:  readOnly,
	})
}

// AdminListViewingRequests обрабатывает GET /admin/leads/viewing-requests.
func (h *LeadHandler) AdminListViewingRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	requests, total, err := h.listUseCase.ViewingRequests(r.Context(), limit, offset)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]ViewingRequestResponseDTO, 0, len(requests))
	for i := range requests {
		items = append(items, toViewingRequestResponse(&requests[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

// AdminListContactRequests обрабатывает GET /admin/leads/contact-requests.
func (h *LeadHandler) AdminListContactRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	requests, total, err := h.listUseCase.ContactRequests(r.Context(), limit, offset)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]ContactRequestResponseDTO, 0, len(requests))
	for i := range requests {
		items = append(items, toContactRequestResponse(&requests[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *LeadHandler) parsePage(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	limit, err := GetLimitOrDefault(r, 20)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	return limit, offset, true
}
