package rest

import (
	"encoding/json"
	"net/http"

	"brokerage-service/internal/core/domain"
	usecases_port "brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CareerHandler struct {
	listUseCase         usecases_port.ListCareerPostingsUseCase
	applyUseCase        usecases_port.SubmitCareerApplicationUseCase
	createUseCase       usecases_port.CreateCareerPostingUseCase
	updateUseCase       usecases_port.UpdateCareerPostingUseCase
	applicationsUseCase usecases_port.ListCareerApplicationsUseCase
}

func NewCareerHandler(
	listUseCase usecases_port.ListCareerPostingsUseCase,
	applyUseCase usecases_port.SubmitCareerApplicationUseCase,
	createUseCase usecases_port.CreateCareerPostingUseCase,
	updateUseCase usecases_port.UpdateCareerPostingUseCase,
	applicationsUseCase usecases_port.ListCareerApplicationsUseCase,
) *CareerHandler {
	return &CareerHandler{
		listUseCase:         listUseCase,
		applyUseCase:        applyUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		applicationsUseCase: applicationsUseCase,
	}
}

// ListPostings обрабатывает GET /careers.
// Параметр location повторяемый: ?location=Minsk&location=Brest.
func (h *CareerHandler) ListPostings(w http.ResponseWriter, r *http.Request) {
	locations := r.URL.Query()["location"]

	postings, err := h.listUseCase.Execute(r.Context(), locations, false)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]CareerPostingResponseDTO, 0, len(postings))
	for i := range postings {
		items = append(items, toCareerPostingResponse(&postings[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AdminListPostings обрабатывает GET /admin/careers - включая снятые вакансии.
func (h *CareerHandler) AdminListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := h.listUseCase.Execute(r.Context(), nil, true)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]CareerPostingResponseDTO, 0, len(postings))
	for i := range postings {
		items = append(items, toCareerPostingResponse(&postings[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// SubmitApplication обрабатывает POST /careers/{postingID}/apply.
func (h *CareerHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	postingID, err := uuid.Parse(chi.URLParam(r, "postingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid posting ID format")
		return
	}

	var dto CareerApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	application := &domain.CareerApplication{
		PostingID: postingID,
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Message:   dto.Message,
		ResumeURL: dto.ResumeURL,
	}

	saved, err := h.applyUseCase.Execute(r.Context(), application)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toCareerApplicationResponse(saved))
}

// CreatePosting обрабатывает POST /admin/careers.
func (h *CareerHandler) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var dto CareerPostingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	posting, err := h.createUseCase.Execute(r.Context(), dto.toDomain())
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toCareerPostingResponse(posting))
}

// UpdatePosting обрабатывает PUT /admin/careers/{postingID}.
func (h *CareerHandler) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	postingID, err := uuid.Parse(chi.URLParam(r, "postingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid posting ID format")
		return
	}

	var dto CareerPostingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	posting := dto.toDomain()
	posting.ID = postingID

	updated, err := h.updateUseCase.Execute(r.Context(), posting)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toCareerPostingResponse(updated))
}

// ListApplications обрабатывает GET /admin/careers/{postingID}/applications.
func (h *CareerHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	postingID, err := uuid.Parse(chi.URLParam(r, "postingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid posting ID format")
		return
	}

	applications, err := h.applicationsUseCase.Execute(r.Context(), postingID)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]CareerApplicationResponseDTO, 0, len(applications))
	for i := range applications {
		items = append(items, toCareerApplicationResponse(&applications[i]))
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
