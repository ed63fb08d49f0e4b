package repositories

import (
	"context"

	"promoadmin/internal/models"

	"gorm.io/gorm"
)

type PartnerRepository interface {
	List(ctx context.Context, limit int) ([]models.Partner, error)
	FindByID(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, partner *models.Partner) error
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.PartnerCategory, error)
}

type gormPartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &gormPartnerRepository{db: db}
}

func (r *gormPartnerRepository) List(ctx context.Context, limit int) ([]models.Partner, error) {
	var partners []models.Partner
	q := r.db.WithContext(ctx).Preload("Category").Order("sort_order ASC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *gormPartnerRepository) FindByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).Preload("Category").First(&partner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *gormPartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Omit("Category").Create(partner).Error
}

func (r *gormPartnerRepository) Update(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Omit("Category").Save(partner).Error
}

func (r *gormPartnerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Partner{}, "id = ?", id).Error
}

func (r *gormPartnerRepository) ListCategories(ctx context.Context) ([]models.PartnerCategory, error) {
	var categories []models.PartnerCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
