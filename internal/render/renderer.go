package render

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatSVG = "svg"
)

// ErrUnsupportedFormat is returned when the requested output format is not one
// of png, pdf or svg
var ErrUnsupportedFormat = errors.New("unsupported render format")

// Artifact describes one rendered output on disk
type Artifact struct {
	ID     string
	Format string
	Path   string
	URL    string
}

// Renderer turns TikZ code into viewable artifacts. A full LaTeX toolchain is
// not assumed: the standalone .tex document is always written next to the
// artifact so it can be compiled elsewhere, and the artifact itself is a
// placeholder in the requested format.
type Renderer struct {
	logger    *slog.Logger
	outputDir string
}

// NewRenderer creates a renderer writing artifacts under outputDir
func NewRenderer(outputDir string, logger *slog.Logger) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Renderer{
		logger:    logger,
		outputDir: outputDir,
	}, nil
}

// Render writes the LaTeX document for tikzCode and produces an artifact in
// the requested format. An empty format defaults to png.
func (r *Renderer) Render(tikzCode, format string) (*Artifact, error) {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatPDF && format != FormatSVG {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	renderID := uuid.NewString()

	texPath := filepath.Join(r.outputDir, renderID+".tex")
	if err := os.WriteFile(texPath, []byte(latexDocument(tikzCode)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write latex document: %w", err)
	}

	outputPath := filepath.Join(r.outputDir, renderID+"."+format)

	var err error
	switch format {
	case FormatPNG:
		err = writePlaceholderPNG(outputPath)
	case FormatPDF:
		err = writePlaceholderPDF(outputPath)
	case FormatSVG:
		err = writePlaceholderSVG(outputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write %s artifact: %w", format, err)
	}

	r.logger.Info("Rendered TikZ artifact",
		slog.String("render_id", renderID),
		slog.String("format", format),
		slog.String("path", outputPath),
	)

	return &Artifact{
		ID:     renderID,
		Format: format,
		Path:   outputPath,
		URL:    "/api/outputs/" + filepath.Base(outputPath),
	}, nil
}

// RenderPreview produces the png preview for a completed conversion and
// returns its serving URL. It backs the conversion worker's preview step.
func (r *Renderer) RenderPreview(tikzCode string) (string, error) {
	artifact, err := r.Render(tikzCode, FormatPNG)
	if err != nil {
		return "", err
	}
	return artifact.URL, nil
}

// latexDocument wraps tikzCode in a standalone document ready for pdflatex
func latexDocument(tikzCode string) string {
	return fmt.Sprintf(`\documentclass[border=2pt]{standalone}
\usepackage{tikz}
\usepackage{amsmath}
\usepackage{amssymb}
\usetikzlibrary{arrows.meta,positioning,shapes,decorations.markings}

\begin{document}
%s
\end{document}
`, tikzCode)
}
