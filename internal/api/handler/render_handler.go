package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/render"
)

// RenderHandler renders raw TikZ code on demand
type RenderHandler struct {
	logger   *slog.Logger
	renderer *render.Renderer
}

// NewRenderHandler creates a new RenderHandler instance
func NewRenderHandler(deps *Dependencies) *RenderHandler {
	return &RenderHandler{
		logger:   deps.Logger,
		renderer: deps.Renderer,
	}
}

// Render handles POST /api/render
func (h *RenderHandler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	artifact, err := h.renderer.Render(req.TikZCode, req.Format)
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.logger.Error("Failed to render TikZ",
			slog.String("format", req.Format),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Rendering failed",
		})
		return
	}

	c.JSON(http.StatusOK, dto.RenderResponse{
		ID:        artifact.ID,
		Format:    artifact.Format,
		OutputURL: artifact.URL,
	})
}
