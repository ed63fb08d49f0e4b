package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"promoadmin/internal/config"
	"promoadmin/internal/logger"
	"promoadmin/internal/storage"
	"promoadmin/pkg/apperrors"

	"github.com/google/uuid"
)

// ImageService validates and stores uploaded images for the content entities.
type ImageService interface {
	Store(ctx context.Context, file *multipart.FileHeader, folder string) (*StoredImage, error)
	Delete(ctx context.Context, path string) error
}

type StoredImage struct {
	URL  string
	Path string
}

type imageService struct {
	storage storage.Storage
	config  *ImageConfig
}

type ImageConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

func ImageConfigFromApp(cfg *config.Config) *ImageConfig {
	return &ImageConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}
}

func NewImageService(st storage.Storage, cfg *ImageConfig) ImageService {
	if cfg == nil {
		cfg = &ImageConfig{
			MaxSize:      5 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		}
	}
	return &imageService{storage: st, config: cfg}
}

func (s *imageService) Store(ctx context.Context, file *multipart.FileHeader, folder string) (*StoredImage, error) {
	if err := s.validate(file); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to save file to storage: %w", err))
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &StoredImage{URL: url, Path: path}, nil
}

func (s *imageService) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		// The DB record is the source of truth; a stale file is logged,
		// not surfaced.
		logger.CtxWithError(ctx, "failed to delete stored image", err, "path", path)
	}
	return nil
}

func (s *imageService) validate(file *multipart.FileHeader) error {
	if file.Size > s.config.MaxSize {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("image exceeds maximum size of %d bytes", s.config.MaxSize))
	}

	contentType := file.Header.Get("Content-Type")
	for _, allowed := range s.config.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return apperrors.NewBadRequestError("unsupported image type: " + contentType)
}
