package dto

import "time"

type UploadResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadTime time.Time `json:"upload_time"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
}
