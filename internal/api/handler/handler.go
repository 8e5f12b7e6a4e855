package handler

import (
	"log/slog"

	"github.com/tikzlab/sketch2tikz/internal/convert"
	"github.com/tikzlab/sketch2tikz/internal/export"
	"github.com/tikzlab/sketch2tikz/internal/render"
	"github.com/tikzlab/sketch2tikz/internal/solver"
	"github.com/tikzlab/sketch2tikz/internal/template"
	"github.com/tikzlab/sketch2tikz/internal/upload"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger     *slog.Logger
	AppName    string
	AppVersion string
	OutputDir  string
	Uploads    *upload.Store
	Registry   *convert.Registry
	Worker     *convert.Worker
	Templates  *template.Store
	Renderer   *render.Renderer
	Exporter   *export.Builder
	Solver     *solver.Solver
	OCR        *solver.OCR
	Solutions  *solver.Store
}
