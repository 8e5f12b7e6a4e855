package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/convert"
	"github.com/tikzlab/sketch2tikz/internal/export"
)

// ExportHandler builds and serves PDF exports of completed conversions
type ExportHandler struct {
	logger    *slog.Logger
	registry  *convert.Registry
	exporter  *export.Builder
	outputDir string
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(deps *Dependencies) *ExportHandler {
	return &ExportHandler{
		logger:    deps.Logger,
		registry:  deps.Registry,
		exporter:  deps.Exporter,
		outputDir: deps.OutputDir,
	}
}

// ExportPDF handles POST /api/export/pdf
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	var req dto.PDFExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.registry.Get(req.DiagramID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Diagram not found",
		})
		return
	}

	result, err := h.exporter.Export(job, req.IncludeCode, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Diagram conversion not completed",
			})
		case errors.Is(err, export.ErrPreviewMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Preview image not found",
			})
		default:
			h.logger.Error("Failed to export PDF",
				slog.String("diagram_id", req.DiagramID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "PDF export failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PDFExportResponse{
		PDFURL:   result.URL,
		Filename: result.Filename,
	})
}

// Download handles GET /api/export/download/:filename
func (h *ExportHandler) Download(c *gin.Context) {
	// Base strips any path components smuggled into the parameter.
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.outputDir, filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "File not found",
		})
		return
	}

	c.FileAttachment(path, filename)
}
