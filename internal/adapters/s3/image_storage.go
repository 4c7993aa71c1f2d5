package s3_adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config - настройки бакета для изображений.
type Config struct {
	Region         string
	Bucket         string
	Endpoint       string // Непустой для S3-совместимых хранилищ (MinIO)
	PublicBaseURL  string // База публичных ссылок, по умолчанию стандартный S3 URL
	ForcePathStyle bool
}

// ImageStorage - реализация ImageStoragePort поверх S3.
type ImageStorage struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

func NewImageStorage(ctx context.Context, cfg Config) (*ImageStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket cannot be empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &ImageStorage{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Upload кладет файл в бакет и возвращает публичный URL.
func (s *ImageStorage) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %q: %w", key, err)
	}
	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// Delete удаляет файл из бакета по его публичному URL.
// URL, не принадлежащий этому хранилищу, пропускается без ошибки.
func (s *ImageStorage) Delete(ctx context.Context, imageURL string) error {
	key, ok := strings.CutPrefix(imageURL, s.publicBaseURL+"/")
	if !ok || key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}
