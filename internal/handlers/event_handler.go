package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"promoadmin/internal/services"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/validator"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(v *validator.Validator, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  NewBaseHandler(v),
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
		events.POST("", h.Create)
		events.POST("/:id", h.Update)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 100)

	events, err := h.eventService.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	payload, poster, ok := h.bindEventBody(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), payload, poster)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	if !allowMethodOverride(c) {
		return
	}

	payload, poster, ok := h.bindEventBody(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("id"), payload, poster)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// bindEventBody accepts either a JSON document or a multipart form whose
// nested collections are JSON-encoded text fields. The poster file only
// exists on the multipart path.
func (h *EventHandler) bindEventBody(c *gin.Context) (*dto.EventPayload, *multipart.FileHeader, bool) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var payload dto.EventPayload
		if !h.BindAndValidateJSON(c, &payload) {
			return nil, nil, false
		}
		return &payload, nil, true
	}

	var form dto.EventForm
	if !h.BindAndValidateForm(c, &form) {
		return nil, nil, false
	}

	payload, err := form.ToPayload()
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, nil, false
	}
	if !h.runValidation(c, payload) {
		return nil, nil, false
	}

	return payload, optionalFormFile(c, "poster"), true
}
