package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/upload"
)

// UploadHandler handles diagram image uploads
type UploadHandler struct {
	logger  *slog.Logger
	uploads *upload.Store
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(deps *Dependencies) *UploadHandler {
	return &UploadHandler{
		logger:  deps.Logger,
		uploads: deps.Uploads,
	}
}

// Upload handles POST /api/upload
// Stores a handwritten physics diagram image
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "file is required",
		})
		return
	}

	image, err := h.uploads.Save(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.logger.Error("Failed to store upload",
			slog.String("filename", file.Filename),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Upload failed",
		})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		ID:         image.ID,
		Filename:   filepath.Base(image.StoredPath),
		UploadTime: image.UploadedAt,
		Status:     "success",
		Message:    "File uploaded successfully",
	})
}

// GetFile handles GET /api/upload/:file_id
// Serves the stored image back to the client
func (h *UploadHandler) GetFile(c *gin.Context) {
	fileID := c.Param("file_id")

	image, err := h.uploads.Get(c.Request.Context(), fileID)
	if err != nil {
		if errors.Is(err, upload.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "File not found",
			})
			return
		}
		h.logger.Error("Failed to look up upload",
			slog.String("file_id", fileID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving file",
		})
		return
	}

	c.File(image.StoredPath)
}
