package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// Соответствие MIME-типов расширениям файлов для загружаемых изображений.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// normalizeImages приводит список изображений объекта к единому виду:
// обычные URL проходят как есть, data URL декодируются и загружаются
// в объектное хранилище, после чего заменяются публичным URL.
func normalizeImages(ctx context.Context, storage port.ImageStoragePort, images []string) ([]string, error) {
	normalized := make([]string, 0, len(images))
	for _, image := range images {
		image = strings.TrimSpace(image)
		if image == "" {
			continue
		}
		if !strings.HasPrefix(image, "data:") {
			normalized = append(normalized, image)
			continue
		}

		contentType, data, err := decodeDataURL(image)
		if err != nil {
			return nil, domain.NewValidationError([]string{"Image data is malformed"})
		}
		ext, ok := imageExtensions[contentType]
		if !ok {
			return nil, domain.NewValidationError([]string{fmt.Sprintf("Unsupported image type: %s", contentType)})
		}

		key := fmt.Sprintf("properties/%s.%s", uuid.New().String(), ext)
		url, err := storage.Upload(ctx, key, contentType, data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		normalized = append(normalized, url)
	}
	return normalized, nil
}

// Соответствие MIME-типов расширениям для резюме из формы отклика.
var resumeExtensions = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
}

// normalizeResume обрабатывает вложенное резюме: обычный URL проходит как
// есть, data URL декодируется и загружается в объектное хранилище.
// Пустая строка допустима, резюме необязательно.
func normalizeResume(ctx context.Context, storage port.ImageStoragePort, resume string) (string, error) {
	resume = strings.TrimSpace(resume)
	if resume == "" || !strings.HasPrefix(resume, "data:") {
		return resume, nil
	}

	contentType, data, err := decodeDataURL(resume)
	if err != nil {
		return "", domain.NewValidationError([]string{"Resume data is malformed"})
	}
	ext, ok := resumeExtensions[contentType]
	if !ok {
		return "", domain.NewValidationError([]string{fmt.Sprintf("Unsupported resume type: %s", contentType)})
	}

	key := fmt.Sprintf("resumes/%s.%s", uuid.New().String(), ext)
	url, err := storage.Upload(ctx, key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}
	return url, nil
}

// decodeDataURL разбирает data URL вида "data:image/png;base64,...."
func decodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	rest := strings.TrimPrefix(dataURL, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, fmt.Errorf("missing data separator")
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if contentType == meta {
		return "", nil, fmt.Errorf("only base64 data URLs are supported")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return contentType, data, nil
}
