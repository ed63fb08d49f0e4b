package repositories

import (
	"context"

	"promoadmin/internal/models"

	"gorm.io/gorm"
)

type BannerRepository interface {
	List(ctx context.Context, limit int) ([]models.Banner, error)
	FindByID(ctx context.Context, id string) (*models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id string) error
}

type gormBannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &gormBannerRepository{db: db}
}

func (r *gormBannerRepository) List(ctx context.Context, limit int) ([]models.Banner, error) {
	var banners []models.Banner
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *gormBannerRepository) FindByID(ctx context.Context, id string) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *gormBannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *gormBannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *gormBannerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id).Error
}
