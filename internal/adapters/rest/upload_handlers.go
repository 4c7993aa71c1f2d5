package rest

import (
	"io"
	"net/http"

	"brokerage-service/internal/core/usecase"
	usecases_port "brokerage-service/internal/core/port/usecases_port"
)

type UploadHandler struct {
	uploadUseCase usecases_port.UploadImageUseCase
}

func NewUploadHandler(uploadUseCase usecases_port.UploadImageUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

// UploadImage обрабатывает POST /admin/uploads - multipart-загрузка изображения.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Лимит на размер тела запроса, чтобы не читать гигабайты в память
	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxUploadSize+1024)

	if err := r.ParseMultipartForm(usecase.MaxUploadSize); err != nil {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "File exceeds the 10 MiB limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Form field 'file' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")

	url, err := h.uploadUseCase.Execute(r.Context(), header.Filename, contentType, data)
	if HandleDomainError(w, err) {
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"url":     url,
	})
}
