package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"promoadmin/internal/logger"
	"promoadmin/internal/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored uploads back to clients. Paths are relative to
// the storage root, e.g. /files/banners/<uuid>.png.
type FileHandler struct {
	store storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file path"})
		return
	}

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to stream file", err, "path", path)
	}
}
