package port

import "context"

// ImageStoragePort - хранилище изображений (S3). Возвращает публичный URL.
// Delete принимает публичный URL; ссылки на чужие хранилища игнорируются.
type ImageStoragePort interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, imageURL string) error
}
