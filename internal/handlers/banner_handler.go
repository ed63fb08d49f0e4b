package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"promoadmin/internal/services"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/validator"
	"promoadmin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BannerHandler struct {
	*BaseHandler
	bannerService services.BannerService
}

func NewBannerHandler(v *validator.Validator, bannerService services.BannerService) *BannerHandler {
	return &BannerHandler{
		BaseHandler:   NewBaseHandler(v),
		bannerService: bannerService,
	}
}

func (h *BannerHandler) RegisterRoutes(r *gin.RouterGroup) {
	banners := r.Group("/banners")
	{
		banners.GET("", h.List)
		banners.GET("/:id", h.Get)
		banners.POST("", h.Create)
		// Multipart clients cannot send PUT bodies everywhere, so updates
		// arrive as POST with a _method=PUT override field.
		banners.POST("/:id", h.Update)
		banners.PUT("/:id", h.Update)
		banners.PATCH("/:id/toggle-status", h.ToggleStatus)
		banners.DELETE("/:id", h.Delete)
	}
}

func (h *BannerHandler) List(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 100)

	banners, err := h.bannerService.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": banners})
}

func (h *BannerHandler) Get(c *gin.Context) {
	banner, err := h.bannerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) Create(c *gin.Context) {
	var form dto.BannerForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), &form, optionalFormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, banner)
}

func (h *BannerHandler) Update(c *gin.Context) {
	if !allowMethodOverride(c) {
		return
	}

	var form dto.BannerForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), c.Param("id"), &form, optionalFormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) ToggleStatus(c *gin.Context) {
	banner, err := h.bannerService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) Delete(c *gin.Context) {
	if err := h.bannerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

// optionalFormFile returns the named file part, or nil when the request
// carries no file under that name.
func optionalFormFile(c *gin.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

// allowMethodOverride checks the _method form field used by multipart
// POST updates. Only PUT is accepted as an override value.
func allowMethodOverride(c *gin.Context) bool {
	override := c.PostForm("_method")
	if override == "" || strings.EqualFold(override, "PUT") {
		return true
	}
	apperrors.HandleError(c, apperrors.NewBadRequestError("Unsupported _method override: "+override))
	return false
}
