package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"promoadmin/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They model just enough gorm behavior for the
// service contracts: ErrRecordNotFound on missing ids, generated ids on
// create.

type fakeBannerRepo struct {
	banners map[string]*models.Banner
	seq     int
	listErr error
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{banners: map[string]*models.Banner{}}
}

func (r *fakeBannerRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("banner-%d", r.seq)
}

func (r *fakeBannerRepo) List(ctx context.Context, limit int) ([]models.Banner, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Banner, 0, len(r.banners))
	for _, b := range r.banners {
		out = append(out, *b)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeBannerRepo) FindByID(ctx context.Context, id string) (*models.Banner, error) {
	b, ok := r.banners[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBannerRepo) Create(ctx context.Context, banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = r.nextID()
	}
	copied := *banner
	r.banners[banner.ID] = &copied
	return nil
}

func (r *fakeBannerRepo) Update(ctx context.Context, banner *models.Banner) error {
	if _, ok := r.banners[banner.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *banner
	r.banners[banner.ID] = &copied
	return nil
}

func (r *fakeBannerRepo) Delete(ctx context.Context, id string) error {
	delete(r.banners, id)
	return nil
}

type fakeEventRepo struct {
	events map[string]*models.Event
	seq    int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (r *fakeEventRepo) List(ctx context.Context, limit int) ([]models.Event, error) {
	out := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		r.seq++
		event.ID = fmt.Sprintf("event-%d", r.seq)
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

type fakeSupportRepo struct {
	section        *models.SupportSection
	deletedPlans   []string
	deletedOptions []string
	deletedFeats   []string
	seq            int
}

func newFakeSupportRepo() *fakeSupportRepo {
	return &fakeSupportRepo{}
}

func (r *fakeSupportRepo) GetSection(ctx context.Context) (*models.SupportSection, error) {
	if r.section == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r.section
	return &copied, nil
}

func (r *fakeSupportRepo) FindSectionByID(ctx context.Context, id string) (*models.SupportSection, error) {
	if r.section == nil || r.section.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r.section
	return &copied, nil
}

func (r *fakeSupportRepo) SaveSection(ctx context.Context, section *models.SupportSection) error {
	if section.ID == "" {
		r.seq++
		section.ID = fmt.Sprintf("section-%d", r.seq)
	}
	for i := range section.Plans {
		if section.Plans[i].ID == "" {
			r.seq++
			section.Plans[i].ID = fmt.Sprintf("plan-%d", r.seq)
		}
		section.Plans[i].SectionID = section.ID
		for j := range section.Plans[i].Features {
			if section.Plans[i].Features[j].ID == "" {
				r.seq++
				section.Plans[i].Features[j].ID = fmt.Sprintf("feature-%d", r.seq)
			}
		}
	}
	for i := range section.Options {
		if section.Options[i].ID == "" {
			r.seq++
			section.Options[i].ID = fmt.Sprintf("option-%d", r.seq)
		}
	}
	copied := *section
	r.section = &copied
	return nil
}

func (r *fakeSupportRepo) DeletePlan(ctx context.Context, id string) error {
	r.deletedPlans = append(r.deletedPlans, id)
	return nil
}

func (r *fakeSupportRepo) DeleteOption(ctx context.Context, id string) error {
	r.deletedOptions = append(r.deletedOptions, id)
	return nil
}

func (r *fakeSupportRepo) DeleteFeature(ctx context.Context, id string) error {
	r.deletedFeats = append(r.deletedFeats, id)
	return nil
}

type fakeImageService struct {
	stored  []string
	deleted []string
	err     error
}

func (s *fakeImageService) Store(ctx context.Context, file *multipart.FileHeader, folder string) (*StoredImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	path := folder + "/" + file.Filename
	s.stored = append(s.stored, path)
	return &StoredImage{URL: "/api/v1/files/" + path, Path: path}, nil
}

func (s *fakeImageService) Delete(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 64}
}
