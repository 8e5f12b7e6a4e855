package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/api/handler"
	"github.com/tikzlab/sketch2tikz/internal/convert"
)

// convertImage drives a conversion to its terminal status and returns the job.
func convertImage(t *testing.T, r http.Handler, deps *handler.Dependencies, imageID string) convert.Job {
	t.Helper()

	w := perform(r, jsonRequest(t, http.MethodPost, "/api/convert", dto.ConvertRequest{ImageID: imageID}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConvertResponse
	decodeJSON(t, w, &resp)
	return waitTerminal(t, deps.Registry, resp.ID)
}

func TestExportHandler_ExportPDF(t *testing.T) {
	r, deps := testRouter(t)
	image := seedUpload(t, deps)
	job := convertImage(t, r, deps, image.ID)
	require.Equal(t, convert.StatusCompleted, job.Status)

	w := perform(r, jsonRequest(t, http.MethodPost, "/api/export/pdf", dto.PDFExportRequest{
		DiagramID:   job.ID,
		IncludeCode: true,
		Title:       "Block on an Incline",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PDFExportResponse
	decodeJSON(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp.Filename, "diagram_"))
	assert.True(t, strings.HasSuffix(resp.Filename, ".pdf"))
	assert.Equal(t, "/api/export/download/"+resp.Filename, resp.PDFURL)

	dl := perform(r, httptest.NewRequest(http.MethodGet, resp.PDFURL, nil))
	require.Equal(t, http.StatusOK, dl.Code)
	assert.True(t, strings.HasPrefix(dl.Body.String(), "%PDF"))
	assert.Contains(t, dl.Header().Get("Content-Disposition"), resp.Filename)
}

func TestExportHandler_ExportPDF_UnknownDiagram(t *testing.T) {
	r, _ := testRouter(t)

	w := perform(r, jsonRequest(t, http.MethodPost, "/api/export/pdf", dto.PDFExportRequest{
		DiagramID: "no-such-diagram",
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Diagram not found", errorMessage(t, w))
}

func TestExportHandler_ExportPDF_NotCompleted(t *testing.T) {
	r, deps := testRouter(t)

	// Registered but never queued, so it stays in processing.
	job := deps.Registry.Create("img", "/tmp/img.png", "general", "", "")

	w := perform(r, jsonRequest(t, http.MethodPost, "/api/export/pdf", dto.PDFExportRequest{
		DiagramID: job.ID,
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Diagram conversion not completed", errorMessage(t, w))
}

func TestExportHandler_ExportPDF_MissingBody(t *testing.T) {
	r, _ := testRouter(t)

	w := perform(r, jsonRequest(t, http.MethodPost, "/api/export/pdf", map[string]bool{"include_code": true}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, w))
}

func TestExportHandler_Download_NotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := perform(r, httptest.NewRequest(http.MethodGet, "/api/export/download/ghost.pdf", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", errorMessage(t, w))
}
