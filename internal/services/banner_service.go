package services

import (
	"context"
	"mime/multipart"

	"promoadmin/internal/logger"
	"promoadmin/internal/models"
	"promoadmin/internal/repositories"
	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"
)

type BannerService interface {
	List(ctx context.Context, limit int) ([]models.Banner, error)
	Get(ctx context.Context, id string) (*models.Banner, error)
	// Create requires an image; Update keeps the persisted image when no new
	// file is supplied.
	Create(ctx context.Context, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error)
	Update(ctx context.Context, id string, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*models.Banner, error)
}

type bannerService struct {
	bannerRepo repositories.BannerRepository
	images     ImageService
}

func NewBannerService(bannerRepo repositories.BannerRepository, images ImageService) BannerService {
	return &bannerService{bannerRepo: bannerRepo, images: images}
}

func (s *bannerService) List(ctx context.Context, limit int) ([]models.Banner, error) {
	banners, err := s.bannerRepo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return banners, nil
}

func (s *bannerService) Get(ctx context.Context, id string) (*models.Banner, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "banner", "Banner not found")
	}
	return banner, nil
}

func (s *bannerService) Create(ctx context.Context, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error) {
	if image == nil {
		return nil, apperrors.NewBadRequestError("banner image is required")
	}

	stored, err := s.images.Store(ctx, image, "banners")
	if err != nil {
		return nil, err
	}

	banner := &models.Banner{
		Title:     form.Title,
		Subtitle:  form.Subtitle,
		Link:      form.Link,
		Status:    form.Status,
		Page:      form.Page,
		ImageURL:  stored.URL,
		ImagePath: stored.Path,
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "banner created", "banner_id", banner.ID, "title", banner.Title)
	return banner, nil
}

func (s *bannerService) Update(ctx context.Context, id string, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "banner", "Banner not found")
	}

	oldPath := ""
	if image != nil {
		stored, err := s.images.Store(ctx, image, "banners")
		if err != nil {
			return nil, err
		}
		oldPath = banner.ImagePath
		banner.ImageURL = stored.URL
		banner.ImagePath = stored.Path
	}

	banner.Title = form.Title
	banner.Subtitle = form.Subtitle
	banner.Link = form.Link
	banner.Status = form.Status
	banner.Page = form.Page

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldPath != "" {
		_ = s.images.Delete(ctx, oldPath)
	}

	return banner, nil
}

func (s *bannerService) Delete(ctx context.Context, id string) error {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "banner", "Banner not found")
	}

	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.images.Delete(ctx, banner.ImagePath)
	return nil
}

func (s *bannerService) ToggleStatus(ctx context.Context, id string) (*models.Banner, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "banner", "Banner not found")
	}

	banner.Status = !banner.Status
	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return banner, nil
}
