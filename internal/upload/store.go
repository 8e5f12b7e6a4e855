package upload

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tikzlab/sketch2tikz/shared/database"
)

var (
	// ErrImageNotFound is returned when no upload exists for the given id
	ErrImageNotFound = errors.New("uploaded image not found")

	// ErrFileTooLarge is returned when the upload exceeds the configured size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrUnsupportedType is returned for uploads that are not png or jpeg images
	ErrUnsupportedType = errors.New("invalid file type")
)

// allowedTypes lists the accepted upload content types
var allowedTypes = []string{"image/png", "image/jpeg", "image/jpg"}

const schema = `
	CREATE TABLE IF NOT EXISTS uploaded_images (
		id            TEXT PRIMARY KEY,
		original_name TEXT NOT NULL,
		stored_path   TEXT NOT NULL,
		content_type  TEXT NOT NULL,
		size_bytes    BIGINT NOT NULL,
		uploaded_at   TIMESTAMP NOT NULL
	)
`

// Store saves uploaded diagram images to disk and indexes them in the database
type Store struct {
	db        *database.Client
	logger    *slog.Logger
	uploadDir string
	maxSize   int64
}

// NewStore creates the upload directory and index table if needed
func NewStore(ctx context.Context, db *database.Client, logger *slog.Logger, uploadDir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create uploads table: %w", err)
	}

	return &Store{
		db:        db,
		logger:    logger,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}, nil
}

// Save validates the upload, writes it to disk under a fresh uuid filename
// and records it in the index
func (s *Store) Save(ctx context.Context, file *multipart.FileHeader) (*UploadedImage, error) {
	contentType := file.Header.Get("Content-Type")
	if !typeAllowed(contentType) {
		return nil, fmt.Errorf("%w: %q (allowed types: %s)", ErrUnsupportedType, contentType, strings.Join(allowedTypes, ", "))
	}

	if file.Size > s.maxSize {
		return nil, fmt.Errorf("%w: maximum size is %dMB", ErrFileTooLarge, s.maxSize/1024/1024)
	}

	id := uuid.NewString()
	storedPath := filepath.Join(s.uploadDir, id+filepath.Ext(file.Filename))

	if err := s.writeFile(file, storedPath); err != nil {
		return nil, err
	}

	image := &UploadedImage{
		ID:           id,
		OriginalName: file.Filename,
		StoredPath:   storedPath,
		ContentType:  contentType,
		SizeBytes:    file.Size,
		UploadedAt:   time.Now().UTC(),
	}

	err := s.db.NamedExecContext(ctx, `
		INSERT INTO uploaded_images (
			id, original_name, stored_path, content_type, size_bytes, uploaded_at
		) VALUES (
			:id, :original_name, :stored_path, :content_type, :size_bytes, :uploaded_at
		)
	`, image)
	if err != nil {
		// Keep disk and index consistent.
		_ = os.Remove(storedPath)
		return nil, fmt.Errorf("failed to index upload: %w", err)
	}

	s.logger.Info("File uploaded successfully",
		slog.String("image_id", id),
		slog.String("original_name", file.Filename),
		slog.Int64("size_bytes", file.Size),
	)

	return image, nil
}

// Get returns the upload record for the given id
func (s *Store) Get(ctx context.Context, id string) (*UploadedImage, error) {
	var image UploadedImage
	err := s.db.GetContext(ctx, &image, `
		SELECT id, original_name, stored_path, content_type, size_bytes, uploaded_at
		FROM uploaded_images
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}

	return &image, nil
}

// ResolvePath resolves an image id to its stored file path. It backs
// conversion submission validation.
func (s *Store) ResolvePath(ctx context.Context, imageID string) (string, bool, error) {
	image, err := s.Get(ctx, imageID)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return image.StoredPath, true, nil
}

func (s *Store) writeFile(file *multipart.FileHeader, dest string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func typeAllowed(contentType string) bool {
	for _, t := range allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
