package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored file artifact for data transfer between layers.
type Document struct {
	ID          uuid.UUID `json:"id"`
	ObjectKey   string    `json:"object_key"`
	Filename    string    `json:"filename"`
	FileSize    int       `json:"file_size"`
	ContentType string    `json:"content_type,omitempty"`
	PublicURL   string    `json:"public_url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
