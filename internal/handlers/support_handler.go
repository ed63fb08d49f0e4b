package handlers

import (
	"net/http"

	"promoadmin/internal/services"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/validator"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	*BaseHandler
	supportService services.SupportService
}

func NewSupportHandler(v *validator.Validator, supportService services.SupportService) *SupportHandler {
	return &SupportHandler{
		BaseHandler:    NewBaseHandler(v),
		supportService: supportService,
	}
}

func (h *SupportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/support-system", h.List)
	r.POST("/support-system", h.Create)
	r.POST("/support-system/:id", h.Update)
	r.PUT("/support-system/:id", h.Update)

	// Nested items are removed eagerly through dedicated endpoints, not as
	// part of the section save.
	r.DELETE("/support-plan/:id", h.DeletePlan)
	r.DELETE("/support-option/:id", h.DeleteOption)
	r.DELETE("/support-feature/:id", h.DeleteFeature)
}

func (h *SupportHandler) List(c *gin.Context) {
	sections, err := h.supportService.ListSections(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sections})
}

func (h *SupportHandler) Create(c *gin.Context) {
	var req dto.SupportSaveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	section, err := h.supportService.Save(c.Request.Context(), "", &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

func (h *SupportHandler) Update(c *gin.Context) {
	var req dto.SupportSaveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	section, err := h.supportService.Save(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (h *SupportHandler) DeletePlan(c *gin.Context) {
	if err := h.supportService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

func (h *SupportHandler) DeleteOption(c *gin.Context) {
	if err := h.supportService.DeleteOption(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Option deleted"})
}

func (h *SupportHandler) DeleteFeature(c *gin.Context) {
	if err := h.supportService.DeleteFeature(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feature deleted"})
}
