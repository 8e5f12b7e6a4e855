package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/convert"
	"github.com/tikzlab/sketch2tikz/internal/template"
)

// TemplateHandler serves the template catalog
type TemplateHandler struct {
	templates *template.Store
}

// NewTemplateHandler creates a new TemplateHandler instance
func NewTemplateHandler(deps *Dependencies) *TemplateHandler {
	return &TemplateHandler{
		templates: deps.Templates,
	}
}

// List handles GET /api/templates
// Returns the catalog, optionally filtered by diagram_type
func (h *TemplateHandler) List(c *gin.Context) {
	diagramType := c.Query("diagram_type")
	if diagramType != "" && !convert.ValidCategory(diagramType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unsupported diagram category",
		})
		return
	}

	var templates []template.Template
	if diagramType != "" {
		templates = h.templates.ByCategory(diagramType)
	} else {
		templates = h.templates.All()
	}

	out := make([]dto.Template, len(templates))
	for i, tpl := range templates {
		out[i] = toTemplateDTO(tpl)
	}

	c.JSON(http.StatusOK, dto.TemplateListResponse{Templates: out})
}

// Get handles GET /api/templates/:template_id
func (h *TemplateHandler) Get(c *gin.Context) {
	templateID := c.Param("template_id")

	tpl, err := h.templates.ByID(templateID)
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Template not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving template",
		})
		return
	}

	c.JSON(http.StatusOK, toTemplateDTO(*tpl))
}

func toTemplateDTO(tpl template.Template) dto.Template {
	return dto.Template{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Description: tpl.Description,
		DiagramType: tpl.DiagramType,
		TikZCode:    tpl.TikZCode,
	}
}
