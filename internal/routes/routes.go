package routes

import (
	"net/http"

	"promoadmin/internal/handlers"
	"promoadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all endpoints under /api/v1. Content management lives
// behind the admin group; auth and file serving stay public.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	h.Auth.RegisterRoutes(api)
	h.File.RegisterRoutes(api)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		h.Banner.RegisterRoutes(admin)
		h.Event.RegisterRoutes(admin)
		h.Partner.RegisterRoutes(admin)
		h.Support.RegisterRoutes(admin)
	}
}
