package services

import (
	"context"

	"promoadmin/internal/logger"
	"promoadmin/internal/models"
	"promoadmin/internal/repositories"
	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"

	"gorm.io/gorm"
)

// SupportService manages the singleton support section and its nested
// collections. Save is a whole-document create-or-update for the section,
// plans and options; per-item deletes are separate, immediate calls (the
// panel removes items eagerly, before the enclosing save).
type SupportService interface {
	ListSections(ctx context.Context) ([]models.SupportSection, error)
	Save(ctx context.Context, id string, req *dto.SupportSaveRequest) (*models.SupportSection, error)
	DeletePlan(ctx context.Context, id string) error
	DeleteOption(ctx context.Context, id string) error
	DeleteFeature(ctx context.Context, id string) error
}

type supportService struct {
	supportRepo repositories.SupportRepository
}

func NewSupportService(supportRepo repositories.SupportRepository) SupportService {
	return &supportService{supportRepo: supportRepo}
}

func (s *supportService) ListSections(ctx context.Context) ([]models.SupportSection, error) {
	section, err := s.supportRepo.GetSection(ctx)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return []models.SupportSection{}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return []models.SupportSection{*section}, nil
}

func (s *supportService) Save(ctx context.Context, id string, req *dto.SupportSaveRequest) (*models.SupportSection, error) {
	section := &models.SupportSection{}
	if id != "" {
		existing, err := s.supportRepo.FindSectionByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, "support", "Support section not found")
		}
		section = existing
	}

	section.Title = req.Title
	section.Description = req.Description
	section.IsActive = req.IsActive

	section.Plans = make([]models.SupportPlan, 0, len(req.Plans))
	for _, p := range req.Plans {
		plan := models.SupportPlan{
			Name:         p.Name,
			SupportHours: p.SupportHours,
			Coverage:     p.Coverage,
		}
		plan.ID = p.ID // empty ID means "create"
		plan.Features = make([]models.SupportFeature, 0, len(p.Features))
		for _, f := range p.Features {
			feature := models.SupportFeature{Text: f.Text}
			feature.ID = f.ID
			plan.Features = append(plan.Features, feature)
		}
		section.Plans = append(section.Plans, plan)
	}

	section.Options = make([]models.SupportOption, 0, len(req.Options))
	for _, o := range req.Options {
		option := models.SupportOption{
			Title:       o.Title,
			Description: o.Description,
		}
		option.ID = o.ID
		section.Options = append(section.Options, option)
	}

	if err := s.supportRepo.SaveSection(ctx, section); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "support section saved",
		"section_id", section.ID,
		"plans", len(section.Plans),
		"options", len(section.Options),
	)

	saved, err := s.supportRepo.FindSectionByID(ctx, section.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *supportService) DeletePlan(ctx context.Context, id string) error {
	if err := s.supportRepo.DeletePlan(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *supportService) DeleteOption(ctx context.Context, id string) error {
	if err := s.supportRepo.DeleteOption(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *supportService) DeleteFeature(ctx context.Context, id string) error {
	if err := s.supportRepo.DeleteFeature(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
