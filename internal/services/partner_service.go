package services

import (
	"context"
	"mime/multipart"

	"promoadmin/internal/models"
	"promoadmin/internal/repositories"
	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"
)

type PartnerService interface {
	List(ctx context.Context, limit int) ([]models.Partner, error)
	Create(ctx context.Context, form *dto.PartnerForm, logo *multipart.FileHeader) (*models.Partner, error)
	Update(ctx context.Context, id string, form *dto.PartnerForm, logo *multipart.FileHeader) (*models.Partner, error)
	Delete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.PartnerCategory, error)
}

type partnerService struct {
	partnerRepo repositories.PartnerRepository
	images      ImageService
}

func NewPartnerService(partnerRepo repositories.PartnerRepository, images ImageService) PartnerService {
	return &partnerService{partnerRepo: partnerRepo, images: images}
}

func (s *partnerService) List(ctx context.Context, limit int) ([]models.Partner, error) {
	partners, err := s.partnerRepo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return partners, nil
}

func (s *partnerService) Create(ctx context.Context, form *dto.PartnerForm, logo *multipart.FileHeader) (*models.Partner, error) {
	partner := &models.Partner{}
	applyPartnerForm(partner, form)

	if logo != nil {
		stored, err := s.images.Store(ctx, logo, "partners")
		if err != nil {
			return nil, err
		}
		partner.LogoURL = stored.URL
		partner.LogoPath = stored.Path
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return partner, nil
}

func (s *partnerService) Update(ctx context.Context, id string, form *dto.PartnerForm, logo *multipart.FileHeader) (*models.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "partner", "Partner not found")
	}

	oldPath := ""
	if logo != nil {
		stored, err := s.images.Store(ctx, logo, "partners")
		if err != nil {
			return nil, err
		}
		oldPath = partner.LogoPath
		partner.LogoURL = stored.URL
		partner.LogoPath = stored.Path
	}

	applyPartnerForm(partner, form)

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldPath != "" {
		_ = s.images.Delete(ctx, oldPath)
	}

	updated, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "partner", "Partner not found")
	}

	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.images.Delete(ctx, partner.LogoPath)
	return nil
}

func (s *partnerService) ListCategories(ctx context.Context) ([]models.PartnerCategory, error) {
	categories, err := s.partnerRepo.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func applyPartnerForm(partner *models.Partner, form *dto.PartnerForm) {
	partner.Name = form.Name
	partner.Link = form.Link
	partner.Description = form.Description
	partner.SortOrder = form.SortOrder
	partner.IsActive = form.IsActive

	// An absent or empty category_id clears the reference.
	if form.CategoryID == "" {
		partner.CategoryID = nil
		partner.Category = nil
	} else {
		categoryID := form.CategoryID
		partner.CategoryID = &categoryID
	}
}
