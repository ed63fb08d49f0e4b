package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"promoadmin/internal/models"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/validator"
	"promoadmin/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Service fakes. Handlers only need the interface surface, so each fake
// records the call and returns canned data.

type fakeBannerService struct {
	banners    []models.Banner
	lastLimit  int
	lastForm   *dto.BannerForm
	lastImage  bool
	updateID   string
	deletedIDs []string
	err        error
}

func (s *fakeBannerService) List(ctx context.Context, limit int) ([]models.Banner, error) {
	s.lastLimit = limit
	return s.banners, s.err
}

func (s *fakeBannerService) Get(ctx context.Context, id string) (*models.Banner, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.banners {
		if s.banners[i].ID == id {
			return &s.banners[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("banner", "Banner not found")
}

func (s *fakeBannerService) Create(ctx context.Context, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastForm = form
	s.lastImage = image != nil
	return &models.Banner{BaseModel: models.BaseModel{ID: "b1"}, Title: form.Title, Page: form.Page}, nil
}

func (s *fakeBannerService) Update(ctx context.Context, id string, form *dto.BannerForm, image *multipart.FileHeader) (*models.Banner, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updateID = id
	s.lastForm = form
	s.lastImage = image != nil
	return &models.Banner{BaseModel: models.BaseModel{ID: id}, Title: form.Title, Page: form.Page}, nil
}

func (s *fakeBannerService) Delete(ctx context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.err
}

func (s *fakeBannerService) ToggleStatus(ctx context.Context, id string) (*models.Banner, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Banner{BaseModel: models.BaseModel{ID: id}, Status: true}, nil
}

func bannerRouter(svc *fakeBannerService) *gin.Engine {
	r := gin.New()
	h := NewBannerHandler(validator.New(), svc)
	group := r.Group("/admin")
	h.RegisterRoutes(group)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestBannerListWrapsDataEnvelope(t *testing.T) {
	svc := &fakeBannerService{banners: []models.Banner{
		{BaseModel: models.BaseModel{ID: "b1"}, Title: "Summer Sale"},
	}}
	router := bannerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/banners?limit=25", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, svc.lastLimit)

	var body struct {
		Data []models.Banner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Summer Sale", body.Data[0].Title)
}

func TestBannerListDefaultsLimit(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/banners", nil))

	assert.Equal(t, 100, svc.lastLimit)
}

func TestBannerCreateBindsMultipartForm(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"title":  "Summer Sale",
		"page":   "home",
		"status": "true",
	}, "image", "hero.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/banners", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Summer Sale", svc.lastForm.Title)
	assert.True(t, svc.lastImage)
}

func TestBannerCreateValidationFailureHasErrorsMap(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"page": "nowhere"}, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/banners", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastForm, "service is not reached on validation failure")

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "title")
	assert.Contains(t, resp.Errors, "page")
}

func TestBannerUpdateViaPostWithOverride(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"_method": "PUT",
		"title":   "Renamed",
		"page":    "about",
	}, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/banners/b1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "b1", svc.updateID)
	assert.Equal(t, "Renamed", svc.lastForm.Title)
	assert.False(t, svc.lastImage, "absent file part keeps the persisted image")
}

func TestBannerUpdateRejectsUnknownOverride(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"_method": "DELETE",
		"title":   "x",
		"page":    "home",
	}, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/banners/b1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.updateID)
}

func TestBannerToggleStatus(t *testing.T) {
	svc := &fakeBannerService{}
	router := bannerRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/banners/b1/toggle-status", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestBannerServiceErrorMapsToHTTPStatus(t *testing.T) {
	svc := &fakeBannerService{err: apperrors.NewNotFoundError("banner", "Banner not found")}
	router := bannerRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/banners/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Banner not found", resp.Message)
}
