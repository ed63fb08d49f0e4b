package handlers

import (
	"net/http"

	"promoadmin/internal/services"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/validator"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	*BaseHandler
	partnerService services.PartnerService
}

func NewPartnerHandler(v *validator.Validator, partnerService services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler:    NewBaseHandler(v),
		partnerService: partnerService,
	}
}

func (h *PartnerHandler) RegisterRoutes(r *gin.RouterGroup) {
	partners := r.Group("/partners")
	{
		partners.GET("", h.List)
		partners.POST("", h.Create)
		partners.POST("/:id", h.Update)
		partners.PUT("/:id", h.Update)
		partners.DELETE("/:id", h.Delete)
	}
	r.GET("/partner-categories", h.ListCategories)
}

func (h *PartnerHandler) List(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 100)

	partners, err := h.partnerService.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": partners})
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var form dto.PartnerForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), &form, optionalFormFile(c, "logo"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partner)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	if !allowMethodOverride(c) {
		return
	}

	var form dto.PartnerForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	partner, err := h.partnerService.Update(c.Request.Context(), c.Param("id"), &form, optionalFormFile(c, "logo"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, partner)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	if err := h.partnerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
}

func (h *PartnerHandler) ListCategories(c *gin.Context) {
	categories, err := h.partnerService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}
