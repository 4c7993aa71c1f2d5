package rest

import (
	"encoding/json"
	"net/http"

	"brokerage-service/internal/core/domain"
	usecases_port "brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BlogHandler struct {
	listUseCase   usecases_port.ListBlogPostsUseCase
	getUseCase    usecases_port.GetBlogPostBySlugUseCase
	createUseCase usecases_port.CreateBlogPostUseCase
	updateUseCase usecases_port.UpdateBlogPostUseCase
	deleteUseCase usecases_port.DeleteBlogPostUseCase
}

func NewBlogHandler(
	listUseCase usecases_port.ListBlogPostsUseCase,
	getUseCase usecases_port.GetBlogPostBySlugUseCase,
	createUseCase usecases_port.CreateBlogPostUseCase,
	updateUseCase usecases_port.UpdateBlogPostUseCase,
	deleteUseCase usecases_port.DeleteBlogPostUseCase,
) *BlogHandler {
	return &BlogHandler{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// ListPosts обрабатывает GET /blog - публичный список опубликованных статей.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, false)
}

// AdminListPosts обрабатывает GET /admin/blog - все статьи, включая черновики.
func (h *BlogHandler) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, true)
}

func (h *BlogHandler) listPosts(w http.ResponseWriter, r *http.Request, includeDrafts bool) {
	limit, err := GetLimitOrDefault(r, 10)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	tag := r.URL.Query().Get("tag")

	posts, total, err := h.listUseCase.Execute(r.Context(), tag, includeDrafts, limit, offset)
	if HandleDomainError(w, err) {
		return
	}

	items := make([]BlogPostResponseDTO, 0, len(posts))
	for i := range posts {
		items = append(items, toBlogPostResponse(&posts[i], false))
	}

	RespondWithJSON(w, http.StatusOK, BlogListResponseDTO{
		Items: items,
		Pagination: domain.PaginationInfo{
			TotalItems:   total,
			TotalPages:   (total + limit - 1) / limit,
			CurrentPage:  offset/limit + 1,
			ItemsPerPage: limit,
		},
	})
}

// GetPostBySlug обрабатывает GET /blog/{slug}.
func (h *BlogHandler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	post, err := h.getUseCase.Execute(r.Context(), slug)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toBlogPostResponse(post, true))
}

// CreatePost обрабатывает POST /admin/blog.
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var dto BlogPostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post, err := h.createUseCase.Execute(r.Context(), dto.toDomain())
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, toBlogPostResponse(post, true))
}

// UpdatePost обрабатывает PUT /admin/blog/{postID}.
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var dto BlogPostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post := dto.toDomain()
	post.ID = postID

	updated, err := h.updateUseCase.Execute(r.Context(), post)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusOK, toBlogPostResponse(updated, true))
}

// DeletePost обрабатывает DELETE /admin/blog/{postID}.
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	if err := h.deleteUseCase.Execute(r.Context(), postID); HandleDomainError(w, err) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
