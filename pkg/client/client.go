// Package client is a Go client for the sketch2tikz HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Conversion status values reported by the API.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusTimeout    = "timeout"
)

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Upload is the result of uploading a diagram image.
type Upload struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadTime time.Time `json:"upload_time"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
}

// ConvertRequest starts a conversion of an uploaded image.
type ConvertRequest struct {
	ImageID     string `json:"image_id"`
	DiagramType string `json:"diagram_type,omitempty"`
	Description string `json:"description,omitempty"`
	UseTemplate string `json:"use_template,omitempty"`
}

// Conversion is the state of a conversion job.
type Conversion struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TikZCode     string `json:"tikz_code,omitempty"`
	PreviewURL   string `json:"preview_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Done reports whether the conversion reached a terminal status.
func (c *Conversion) Done() bool {
	switch c.Status {
	case StatusCompleted, StatusFailed, StatusTimeout:
		return true
	}
	return false
}

// Template is a TikZ example for a diagram category.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
	TikZCode    string `json:"tikz_code"`
}

// RenderResult points at a rendered output file.
type RenderResult struct {
	ID        string `json:"id"`
	Format    string `json:"format"`
	OutputURL string `json:"output_url"`
}

// PDFExportRequest exports a completed conversion as a PDF document.
type PDFExportRequest struct {
	DiagramID   string `json:"diagram_id"`
	IncludeCode bool   `json:"include_code"`
	Title       string `json:"title,omitempty"`
}

// PDFExport points at an exported PDF document.
type PDFExport struct {
	PDFURL   string `json:"pdf_url"`
	Filename string `json:"filename"`
}

// Client calls the sketch2tikz API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL, for example "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadDiagram uploads a diagram image. The content type is derived from
// the filename extension.
func (c *Client) UploadDiagram(ctx context.Context, filename string, content io.Reader) (*Upload, error) {
	return c.uploadFile(ctx, "/api/upload", filename, content)
}

// Convert starts a conversion job for an uploaded image. The returned
// conversion is in processing status; poll ConversionStatus or use a Poller
// to wait for the result.
func (c *Client) Convert(ctx context.Context, req ConvertRequest) (*Conversion, error) {
	var conv Conversion
	if err := c.doJSON(ctx, http.MethodPost, "/api/convert", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// ConversionStatus fetches the current state of a conversion job.
func (c *Client) ConversionStatus(ctx context.Context, conversionID string) (*Conversion, error) {
	var conv Conversion
	if err := c.doJSON(ctx, http.MethodGet, "/api/convert/"+url.PathEscape(conversionID), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// Templates lists templates, filtered by diagram type when non-empty.
func (c *Client) Templates(ctx context.Context, diagramType string) ([]Template, error) {
	path := "/api/templates"
	if diagramType != "" {
		path += "?diagram_type=" + url.QueryEscape(diagramType)
	}

	var resp struct {
		Templates []Template `json:"templates"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

// Template fetches a single template by id.
func (c *Client) Template(ctx context.Context, templateID string) (*Template, error) {
	var tpl Template
	if err := c.doJSON(ctx, http.MethodGet, "/api/templates/"+url.PathEscape(templateID), nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Render renders TikZ code to the given format (png, pdf or svg; empty
// means png).
func (c *Client) Render(ctx context.Context, tikzCode, format string) (*RenderResult, error) {
	req := struct {
		TikZCode string `json:"tikz_code"`
		Format   string `json:"format,omitempty"`
	}{TikZCode: tikzCode, Format: format}

	var result RenderResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/render", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportPDF exports a completed conversion as a PDF document.
func (c *Client) ExportPDF(ctx context.Context, req PDFExportRequest) (*PDFExport, error) {
	var export PDFExport
	if err := c.doJSON(ctx, http.MethodPost, "/api/export/pdf", req, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

func (c *Client) uploadFile(ctx context.Context, path, filename string, content io.Reader) (*Upload, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var upload Upload
	if err := c.do(req, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
