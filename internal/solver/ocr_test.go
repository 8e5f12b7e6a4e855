package solver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVision struct {
	text string
	err  error
}

func (f *fakeVision) ReadText(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func writeProblemImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "problem.png")
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o644))
	return path
}

func TestOCR_ExtractText_Stub(t *testing.T) {
	ocr := NewOCR(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := ocr.ExtractText(context.Background(), writeProblemImage(t))
	require.NoError(t, err)

	assert.Contains(t, result.Text, "inclined plane")
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "stub", result.Method)
}

func TestOCR_ExtractText_Vision(t *testing.T) {
	vision := &fakeVision{text: "A projectile is fired at 45 degrees."}
	ocr := NewOCR(vision, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := ocr.ExtractText(context.Background(), writeProblemImage(t))
	require.NoError(t, err)

	assert.Equal(t, "A projectile is fired at 45 degrees.", result.Text)
	assert.Equal(t, "ai_vision", result.Method)
}

func TestOCR_ExtractText_VisionFailureFallsBack(t *testing.T) {
	vision := &fakeVision{err: errors.New("model unavailable")}
	ocr := NewOCR(vision, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := ocr.ExtractText(context.Background(), writeProblemImage(t))
	require.NoError(t, err)

	assert.Equal(t, "stub", result.Method)
	assert.Contains(t, result.Text, "inclined plane")
}

func TestOCR_ExtractText_MissingImage(t *testing.T) {
	ocr := NewOCR(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := ocr.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Nil(t, result)
}
