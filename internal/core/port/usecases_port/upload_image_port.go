package usecases_port

import "context"

type UploadImageUseCase interface {
	Execute(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
