package repositories

import (
	"context"

	"promoadmin/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	List(ctx context.Context, limit int) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	// Update replaces the event's scalar fields and swaps the nested
	// collections wholesale (every save sends the full document).
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

type gormEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) List(ctx context.Context, limit int) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Certificates", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *gormEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Certificates", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *gormEventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Wholesale replacement of the nested rows.
		if err := tx.Delete(&models.EventParticipant{}, "event_id = ?", event.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.EventCertificate{}, "event_id = ?", event.ID).Error; err != nil {
			return err
		}

		if err := tx.Omit("Participants", "Certificates").Save(event).Error; err != nil {
			return err
		}

		for i := range event.Participants {
			event.Participants[i].EventID = event.ID
			event.Participants[i].Position = i
		}
		if len(event.Participants) > 0 {
			if err := tx.Create(&event.Participants).Error; err != nil {
				return err
			}
		}

		for i := range event.Certificates {
			event.Certificates[i].EventID = event.ID
			event.Certificates[i].Position = i
		}
		if len(event.Certificates) > 0 {
			if err := tx.Create(&event.Certificates).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *gormEventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.EventParticipant{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.EventCertificate{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
}
