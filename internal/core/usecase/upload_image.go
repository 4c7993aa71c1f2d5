package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// MaxUploadSize - предел размера загружаемого изображения (10 MiB).
const MaxUploadSize = 10 << 20

type UploadImageUseCase struct {
	imageStorage port.ImageStoragePort
}

func NewUploadImageUseCase(imageStorage port.ImageStoragePort) *UploadImageUseCase {
	return &UploadImageUseCase{imageStorage: imageStorage}
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "UploadImage",
		"filename":     filename,
		"content_type": contentType,
		"size":         len(data),
	})

	ucLogger.Info("Use case started", nil)

	if len(data) == 0 {
		return "", domain.NewValidationError([]string{"File is empty"})
	}
	if len(data) > MaxUploadSize {
		return "", domain.NewValidationError([]string{"File exceeds the 10 MiB limit"})
	}
	if _, ok := imageExtensions[contentType]; !ok {
		return "", domain.NewValidationError([]string{fmt.Sprintf("Unsupported image type: %s", contentType)})
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = imageExtensions[contentType]
	}
	key := fmt.Sprintf("uploads/%s.%s", uuid.New().String(), ext)

	url, err := uc.imageStorage.Upload(ctx, key, contentType, data)
	if err != nil {
		ucLogger.Error("Image storage failed to upload file", err, nil)
		return "", err
	}

	ucLogger.Info("Use case finished: image uploaded", port.Fields{"url": url})
	return url, nil
}
