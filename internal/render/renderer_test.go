package render

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()

	dir := t.TempDir()
	renderer, err := NewRenderer(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return renderer, dir
}

const sampleTikZ = `\begin{tikzpicture}
    \draw[thick] (0,0) -- (2,1);
\end{tikzpicture}`

func TestRenderer_Render_PNG(t *testing.T) {
	renderer, dir := testRenderer(t)

	artifact, err := renderer.Render(sampleTikZ, FormatPNG)
	require.NoError(t, err)

	assert.NotEmpty(t, artifact.ID)
	assert.Equal(t, FormatPNG, artifact.Format)
	assert.Equal(t, "/api/outputs/"+artifact.ID+".png", artifact.URL)

	f, err := os.Open(artifact.Path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	// The standalone document is written next to the artifact.
	tex, err := os.ReadFile(filepath.Join(dir, artifact.ID+".tex"))
	require.NoError(t, err)
	assert.Contains(t, string(tex), `\documentclass[border=2pt]{standalone}`)
	assert.Contains(t, string(tex), `\usetikzlibrary{arrows.meta,positioning,shapes,decorations.markings}`)
	assert.Contains(t, string(tex), sampleTikZ)
}

func TestRenderer_Render_PDF(t *testing.T) {
	renderer, _ := testRenderer(t)

	artifact, err := renderer.Render(sampleTikZ, FormatPDF)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(artifact.Path, ".pdf"))

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderer_Render_SVG(t *testing.T) {
	renderer, _ := testRenderer(t)

	artifact, err := renderer.Render(sampleTikZ, FormatSVG)
	require.NoError(t, err)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "TikZ Diagram Preview")
}

func TestRenderer_Render_DefaultsToPNG(t *testing.T) {
	renderer, _ := testRenderer(t)

	artifact, err := renderer.Render(sampleTikZ, "")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, artifact.Format)
	assert.True(t, strings.HasSuffix(artifact.Path, ".png"))
}

func TestRenderer_Render_UnsupportedFormat(t *testing.T) {
	renderer, _ := testRenderer(t)

	artifact, err := renderer.Render(sampleTikZ, "gif")
	require.Error(t, err)
	assert.Nil(t, artifact)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderer_RenderPreview(t *testing.T) {
	renderer, dir := testRenderer(t)

	url, err := renderer.RenderPreview(sampleTikZ)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/api/outputs/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(url, "/api/outputs/")))
	assert.NoError(t, err)
}
