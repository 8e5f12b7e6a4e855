package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tikzlab/sketch2tikz/internal/convert"
)

// DefaultTitle is used when an export request carries no title
const DefaultTitle = "Physics Diagram"

// ErrNotCompleted is returned when the conversion job is not in the completed
// status and therefore has no result to export
var ErrNotCompleted = errors.New("diagram conversion not completed")

// ErrPreviewMissing is returned when a completed job has no preview image to
// place in the document
var ErrPreviewMissing = errors.New("preview image not found")

// PDFExport describes one generated export document
type PDFExport struct {
	Filename string
	Path     string
	URL      string
}

// Builder generates PDF export documents from completed conversion jobs
type Builder struct {
	logger    *slog.Logger
	outputDir string
}

// NewBuilder creates a builder writing documents under outputDir
func NewBuilder(outputDir string, logger *slog.Logger) (*Builder, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Builder{
		logger:    logger,
		outputDir: outputDir,
	}, nil
}

// Export builds a PDF for the job's conversion result: a title page header,
// the generation timestamp, the rendered preview and optionally the TikZ
// source. The job must be completed.
func (b *Builder) Export(job convert.Job, includeCode bool, title string) (*PDFExport, error) {
	if job.Status != convert.StatusCompleted {
		return nil, fmt.Errorf("%w: job %s has status %q", ErrNotCompleted, job.ID, job.Status)
	}
	if job.PreviewURL == "" {
		return nil, fmt.Errorf("%w: job %s", ErrPreviewMissing, job.ID)
	}

	if title == "" {
		title = DefaultTitle
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(127, 140, 141)
	generated := fmt.Sprintf("Generated on %s", time.Now().Format("2006-01-02 15:04:05"))
	pdf.CellFormat(0, 6, generated, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	// The preview file can be gone even when the job recorded a URL. The
	// document is still produced without it.
	imagePath := filepath.Join(b.outputDir, path.Base(job.PreviewURL))
	if _, err := os.Stat(imagePath); err == nil {
		b.placeImage(pdf, imagePath)
	} else {
		b.logger.Warn("Preview image missing on disk, exporting without it",
			slog.String("job_id", job.ID),
			slog.String("path", imagePath),
		)
	}

	if includeCode && job.TikZCode != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 8, "TikZ Source Code:", "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Courier", "", 8)
		pdf.SetFillColor(236, 240, 241)
		pdf.MultiCell(0, 4, job.TikZCode, "", "L", true)
	}

	filename := fmt.Sprintf("diagram_%s.pdf", time.Now().Format("20060102_150405"))
	pdfPath := filepath.Join(b.outputDir, filename)
	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return nil, fmt.Errorf("failed to write pdf document: %w", err)
	}

	b.logger.Info("Exported conversion to PDF",
		slog.String("job_id", job.ID),
		slog.String("filename", filename),
		slog.Bool("include_code", includeCode),
	)

	return &PDFExport{
		Filename: filename,
		Path:     pdfPath,
		URL:      "/api/export/download/" + filename,
	}, nil
}

// placeImage centers the preview on the page, capped at the content width
func (b *Builder) placeImage(pdf *fpdf.Fpdf, imagePath string) {
	opts := fpdf.ImageOptions{ReadDpi: true}

	info := pdf.RegisterImageOptions(imagePath, opts)
	if info == nil || pdf.Err() {
		// Reset so the rest of the document still renders.
		pdf.ClearError()
		return
	}

	width, height := info.Extent()
	maxWidth := 165.0
	drawWidth := width
	if drawWidth > maxWidth {
		drawWidth = maxWidth
	}
	drawHeight := drawWidth * height / width

	pageWidth, _ := pdf.GetPageSize()
	x := (pageWidth - drawWidth) / 2
	pdf.ImageOptions(imagePath, x, 0, drawWidth, drawHeight, true, opts, 0, "")
}
