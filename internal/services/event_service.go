package services

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"promoadmin/internal/logger"
	"promoadmin/internal/models"
	"promoadmin/internal/repositories"
	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"

	"gorm.io/datatypes"
)

type EventService interface {
	List(ctx context.Context, limit int) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, payload *dto.EventPayload, poster *multipart.FileHeader) (*models.Event, error)
	// Update replaces the nested collections with whatever the payload
	// carries (whole-document replacement). A nil poster keeps the current
	// image.
	Update(ctx context.Context, id string, payload *dto.EventPayload, poster *multipart.FileHeader) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	eventRepo repositories.EventRepository
	images    ImageService
}

func NewEventService(eventRepo repositories.EventRepository, images ImageService) EventService {
	return &eventService{eventRepo: eventRepo, images: images}
}

func (s *eventService) List(ctx context.Context, limit int) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "event", "Event not found")
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, payload *dto.EventPayload, poster *multipart.FileHeader) (*models.Event, error) {
	event := &models.Event{}
	if err := applyEventPayload(event, payload); err != nil {
		return nil, err
	}

	if poster != nil {
		stored, err := s.images.Store(ctx, poster, "events")
		if err != nil {
			return nil, err
		}
		event.PosterURL = stored.URL
		event.PosterPath = stored.Path
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "event created", "event_id", event.ID, "title", event.Title)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id string, payload *dto.EventPayload, poster *multipart.FileHeader) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "event", "Event not found")
	}

	oldPath := ""
	if poster != nil {
		stored, err := s.images.Store(ctx, poster, "events")
		if err != nil {
			return nil, err
		}
		oldPath = event.PosterPath
		event.PosterURL = stored.URL
		event.PosterPath = stored.Path
	}

	if err := applyEventPayload(event, payload); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldPath != "" {
		_ = s.images.Delete(ctx, oldPath)
	}

	return s.Get(ctx, id)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "event", "Event not found")
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.images.Delete(ctx, event.PosterPath)
	return nil
}

func applyEventPayload(event *models.Event, payload *dto.EventPayload) error {
	event.Title = payload.Title
	event.Subtitle = payload.Subtitle
	event.Date = payload.Date
	event.Location = payload.Location
	event.Category = payload.Category
	event.Description = payload.Description
	event.Published = payload.Published

	event.Participants = make([]models.EventParticipant, 0, len(payload.Participants))
	for i, p := range payload.Participants {
		event.Participants = append(event.Participants, models.EventParticipant{
			Name:     p.Name,
			Role:     p.Role,
			Position: i,
		})
	}

	event.Certificates = make([]models.EventCertificate, 0, len(payload.Certificates))
	for i, c := range payload.Certificates {
		event.Certificates = append(event.Certificates, models.EventCertificate{
			Title:    c.Title,
			Position: i,
		})
	}

	certifications := payload.Certifications
	if certifications == nil {
		certifications = []string{}
	}
	raw, err := json.Marshal(certifications)
	if err != nil {
		return apperrors.InternalError(err)
	}
	event.Certifications = datatypes.JSON(raw)

	return nil
}
