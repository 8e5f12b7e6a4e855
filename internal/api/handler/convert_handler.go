package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/convert"
)

// ConvertHandler handles diagram conversion requests
type ConvertHandler struct {
	logger   *slog.Logger
	registry *convert.Registry
	worker   *convert.Worker
}

// NewConvertHandler creates a new ConvertHandler instance
func NewConvertHandler(deps *Dependencies) *ConvertHandler {
	return &ConvertHandler{
		logger:   deps.Logger,
		registry: deps.Registry,
		worker:   deps.Worker,
	}
}

// Convert handles POST /api/convert
// Starts an asynchronous conversion and returns the job in processing state
func (h *ConvertHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.DiagramType == "" {
		req.DiagramType = convert.CategoryGeneral
	}

	job, err := h.worker.Submit(c.Request.Context(), convert.SubmitRequest{
		ImageID:     req.ImageID,
		Category:    req.DiagramType,
		Description: req.Description,
		TemplateID:  req.UseTemplate,
	})
	if err != nil {
		switch {
		case errors.Is(err, convert.ErrUnsupportedCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, convert.ErrUnknownImage):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Image not found",
			})
		case errors.Is(err, convert.ErrQueueFull):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Conversion queue is full, retry later",
			})
		default:
			h.logger.Error("Failed to submit conversion",
				slog.String("image_id", req.ImageID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Conversion failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, toConvertResponse(*job))
}

// Status handles GET /api/convert/:conversion_id
// Returns the current snapshot of a conversion job
func (h *ConvertHandler) Status(c *gin.Context) {
	conversionID := c.Param("conversion_id")

	job, err := h.registry.Get(conversionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Conversion not found",
		})
		return
	}

	c.JSON(http.StatusOK, toConvertResponse(job))
}

func toConvertResponse(job convert.Job) dto.ConvertResponse {
	return dto.ConvertResponse{
		ID:           job.ID,
		Status:       string(job.Status),
		TikZCode:     job.TikZCode,
		PreviewURL:   job.PreviewURL,
		ErrorMessage: job.ErrorMessage,
	}
}
