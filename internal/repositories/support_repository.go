package repositories

import (
	"context"

	"promoadmin/internal/models"

	"gorm.io/gorm"
)

type SupportRepository interface {
	// GetSection returns the singleton section with plans, features and
	// options preloaded, or gorm.ErrRecordNotFound when none exists yet.
	GetSection(ctx context.Context) (*models.SupportSection, error)
	FindSectionByID(ctx context.Context, id string) (*models.SupportSection, error)
	// SaveSection upserts the section scalars and creates/updates the nested
	// items it carries. Missing items are NOT deleted here: removal happens
	// through the dedicated per-item deletes (eager-delete contract).
	SaveSection(ctx context.Context, section *models.SupportSection) error
	DeletePlan(ctx context.Context, id string) error
	DeleteOption(ctx context.Context, id string) error
	DeleteFeature(ctx context.Context, id string) error
}

type gormSupportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &gormSupportRepository{db: db}
}

// upsert creates records that have no identity yet and saves the rest, so
// the DB default can assign fresh UUIDs.
func upsert(db *gorm.DB, isNew bool, value interface{}) error {
	if isNew {
		return db.Create(value).Error
	}
	return db.Save(value).Error
}

func preloadSection(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Plans", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Plans.Features", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

func (r *gormSupportRepository) GetSection(ctx context.Context) (*models.SupportSection, error) {
	var section models.SupportSection
	if err := preloadSection(r.db.WithContext(ctx)).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *gormSupportRepository) FindSectionByID(ctx context.Context, id string) (*models.SupportSection, error) {
	var section models.SupportSection
	if err := preloadSection(r.db.WithContext(ctx)).First(&section, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *gormSupportRepository) SaveSection(ctx context.Context, section *models.SupportSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx.Omit("Plans", "Options"), section.ID == "", section); err != nil {
			return err
		}

		for i := range section.Plans {
			plan := &section.Plans[i]
			plan.SectionID = section.ID
			plan.Position = i
			if err := upsert(tx.Omit("Features"), plan.ID == "", plan); err != nil {
				return err
			}
			for j := range plan.Features {
				feature := &plan.Features[j]
				feature.PlanID = plan.ID
				feature.Position = j
				if err := upsert(tx, feature.ID == "", feature); err != nil {
					return err
				}
			}
		}

		for i := range section.Options {
			option := &section.Options[i]
			option.SectionID = section.ID
			option.Position = i
			if err := upsert(tx, option.ID == "", option); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *gormSupportRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SupportFeature{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SupportPlan{}, "id = ?", id).Error
	})
}

func (r *gormSupportRepository) DeleteOption(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SupportOption{}, "id = ?", id).Error
}

func (r *gormSupportRepository) DeleteFeature(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SupportFeature{}, "id = ?", id).Error
}
