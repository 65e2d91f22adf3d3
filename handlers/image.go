package handlers

import (
	"errors"
	"net/http"
	"strings"

	"resourcebooking/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

type ImageHandler struct {
	StorageService storage.StorageService
	Logger         *zap.Logger
}

// UploadImageHandler handles POST /api/images with a multipart "file" field.
func (h *ImageHandler) UploadImageHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A multipart file field named 'file' is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, logger, "Failed to read upload", err)
		return
	}
	defer file.Close()

	url, err := h.StorageService.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		h.writeStorageError(c, logger, "Failed to upload image", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteImageHandler handles DELETE /api/images?filePath=.
func (h *ImageHandler) DeleteImageHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	filePath := c.Query("filePath")
	if filePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filePath query parameter is required"})
		return
	}
	found, err := h.StorageService.Delete(c.Request.Context(), filePath)
	if err != nil {
		h.writeStorageError(c, logger, "Failed to delete image", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ImageHandler) writeStorageError(c *gin.Context, logger *zap.Logger, message string, err error) {
	if errors.Is(err, storage.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	internalError(c, logger, message, err)
}
