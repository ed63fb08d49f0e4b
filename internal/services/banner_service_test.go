package services

import (
	"context"
	"testing"

	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerCreateRequiresImage(t *testing.T) {
	repo := newFakeBannerRepo()
	svc := NewBannerService(repo, &fakeImageService{})

	_, err := svc.Create(context.Background(), &dto.BannerForm{Title: "Summer Sale", Page: "home"}, nil)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Empty(t, repo.banners, "nothing persisted on rejection")
}

func TestBannerCreateStoresImageAndRecord(t *testing.T) {
	repo := newFakeBannerRepo()
	images := &fakeImageService{}
	svc := NewBannerService(repo, images)

	form := &dto.BannerForm{Title: "Summer Sale", Subtitle: "Up to 50%", Page: "home", Status: true}
	banner, err := svc.Create(context.Background(), form, fileHeader("hero.png"))
	require.NoError(t, err)

	assert.NotEmpty(t, banner.ID)
	assert.Equal(t, "banners/hero.png", banner.ImagePath)
	assert.Equal(t, "/api/v1/files/banners/hero.png", banner.ImageURL)
	assert.Equal(t, []string{"banners/hero.png"}, images.stored)
}

func TestBannerUpdateKeepsImageWhenNoneStaged(t *testing.T) {
	repo := newFakeBannerRepo()
	images := &fakeImageService{}
	svc := NewBannerService(repo, images)

	banner, err := svc.Create(context.Background(),
		&dto.BannerForm{Title: "Old", Page: "home"}, fileHeader("old.png"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), banner.ID,
		&dto.BannerForm{Title: "New title", Page: "about"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "about", updated.Page)
	assert.Equal(t, "banners/old.png", updated.ImagePath, "persisted image survives an update without a new file")
	assert.Empty(t, images.deleted)
}

func TestBannerUpdateReplacesImageAndDeletesOld(t *testing.T) {
	repo := newFakeBannerRepo()
	images := &fakeImageService{}
	svc := NewBannerService(repo, images)

	banner, err := svc.Create(context.Background(),
		&dto.BannerForm{Title: "Old", Page: "home"}, fileHeader("old.png"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), banner.ID,
		&dto.BannerForm{Title: "Old", Page: "home"}, fileHeader("new.png"))
	require.NoError(t, err)

	assert.Equal(t, "banners/new.png", updated.ImagePath)
	assert.Equal(t, []string{"banners/old.png"}, images.deleted, "previous image is removed after a successful swap")
}

func TestBannerUpdateMissingRecordIsNotFound(t *testing.T) {
	svc := NewBannerService(newFakeBannerRepo(), &fakeImageService{})

	_, err := svc.Update(context.Background(), "missing",
		&dto.BannerForm{Title: "x", Page: "home"}, nil)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestBannerToggleStatusFlips(t *testing.T) {
	repo := newFakeBannerRepo()
	svc := NewBannerService(repo, &fakeImageService{})

	banner, err := svc.Create(context.Background(),
		&dto.BannerForm{Title: "t", Page: "home", Status: true}, fileHeader("a.png"))
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(context.Background(), banner.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Status)

	toggled, err = svc.ToggleStatus(context.Background(), banner.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Status)
}

func TestBannerDeleteRemovesStoredImage(t *testing.T) {
	repo := newFakeBannerRepo()
	images := &fakeImageService{}
	svc := NewBannerService(repo, images)

	banner, err := svc.Create(context.Background(),
		&dto.BannerForm{Title: "t", Page: "home"}, fileHeader("a.png"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), banner.ID))
	assert.Empty(t, repo.banners)
	assert.Equal(t, []string{"banners/a.png"}, images.deleted)
}
