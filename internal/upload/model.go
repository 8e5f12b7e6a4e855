package upload

import "time"

// UploadedImage records a stored diagram upload
type UploadedImage struct {
	ID           string    `db:"id"`
	OriginalName string    `db:"original_name"`
	StoredPath   string    `db:"stored_path"`
	ContentType  string    `db:"content_type"`
	SizeBytes    int64     `db:"size_bytes"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
