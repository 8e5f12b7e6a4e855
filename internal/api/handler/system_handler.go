package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles service metadata endpoints
type SystemHandler struct {
	appName    string
	appVersion string
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(deps *Dependencies) *SystemHandler {
	return &SystemHandler{
		appName:    deps.AppName,
		appVersion: deps.AppVersion,
	}
}

// Info handles GET /
// Returns service metadata and the endpoint map
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.appName,
		"version":     h.appVersion,
		"description": "Convert handwritten physics diagrams to digital TikZ diagrams",
		"endpoints": gin.H{
			"upload":    "/api/upload",
			"convert":   "/api/convert",
			"templates": "/api/templates",
			"render":    "/api/render",
			"export":    "/api/export/pdf",
			"solver":    "/api/solver/solve",
			"health":    "/health",
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.appName,
	})
}
