package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tikzlab/sketch2tikz/internal/api/handler"
	"github.com/tikzlab/sketch2tikz/internal/api/router"
	"github.com/tikzlab/sketch2tikz/internal/convert"
	"github.com/tikzlab/sketch2tikz/internal/export"
	"github.com/tikzlab/sketch2tikz/internal/inference"
	"github.com/tikzlab/sketch2tikz/internal/render"
	"github.com/tikzlab/sketch2tikz/internal/solver"
	"github.com/tikzlab/sketch2tikz/internal/template"
	"github.com/tikzlab/sketch2tikz/internal/upload"
	"github.com/tikzlab/sketch2tikz/shared/database"
)

const testMaxUploadSize = 1 << 20

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testDependencies wires the full service against temp dirs, an in-process
// sqlite index and the mock inference strategy with no simulated delay.
func testDependencies(t *testing.T) *handler.Dependencies {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	db, err := database.NewClient(&database.Config{
		Driver:          database.DriverSQLite,
		Path:            filepath.Join(dir, "api.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	uploads, err := upload.NewStore(context.Background(), db, logger, filepath.Join(dir, "uploads"), testMaxUploadSize)
	require.NoError(t, err)

	templates, err := template.NewStore(filepath.Join(dir, "templates"), logger)
	require.NoError(t, err)

	outputDir := filepath.Join(dir, "outputs")
	renderer, err := render.NewRenderer(outputDir, logger)
	require.NoError(t, err)

	exporter, err := export.NewBuilder(outputDir, logger)
	require.NoError(t, err)

	registry := convert.NewRegistry()
	worker := convert.NewWorker(&convert.Config{
		Logger:        logger,
		Registry:      registry,
		Strategy:      inference.NewMock(0),
		Images:        uploads,
		Templates:     templates,
		Previews:      renderer,
		Concurrency:   2,
		QueueSize:     8,
		JobTimeout:    5 * time.Second,
		SweepInterval: 50 * time.Millisecond,
	})
	worker.Start(context.Background())
	t.Cleanup(worker.Stop)

	return &handler.Dependencies{
		Logger:     logger,
		AppName:    "sketch2tikz-api",
		AppVersion: "1.0.0",
		OutputDir:  outputDir,
		Uploads:    uploads,
		Registry:   registry,
		Worker:     worker,
		Templates:  templates,
		Renderer:   renderer,
		Exporter:   exporter,
		Solver:     solver.NewSolver(logger),
		OCR:        solver.NewOCR(nil, logger),
		Solutions:  solver.NewStore(),
	}
}

func testRouter(t *testing.T) (*gin.Engine, *handler.Dependencies) {
	t.Helper()

	deps := testDependencies(t)
	return router.SetupRouter(deps), deps
}

func perform(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	decodeJSON(t, w, &body)
	return body["error"]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func multipartFile(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, *multipart.Writer) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, mw
}

func uploadRequest(t *testing.T, target, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	body, mw := multipartFile(t, filename, contentType, content)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// seedUpload stores an image directly, bypassing the HTTP layer.
func seedUpload(t *testing.T, deps *handler.Dependencies) *upload.UploadedImage {
	t.Helper()

	body, mw := multipartFile(t, "sketch.png", "image/png", pngBytes(t))

	form, err := multipart.NewReader(body, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	image, err := deps.Uploads.Save(context.Background(), form.File["file"][0])
	require.NoError(t, err)
	return image
}

// waitTerminal polls the registry until the job reaches a terminal status.
func waitTerminal(t *testing.T, registry *convert.Registry, jobID string) convert.Job {
	t.Helper()

	var job convert.Job
	require.Eventually(t, func() bool {
		j, err := registry.Get(jobID)
		if err != nil {
			return false
		}
		job = j
		return j.Status.Terminal()
	}, 3*time.Second, 10*time.Millisecond)
	return job
}
