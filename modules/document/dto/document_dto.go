package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	ID               uuid.UUID `json:"id"`
	FileName         string    `json:"file_name"`
	OriginalFileName string    `json:"original_file_name"`
	ContentType      *string   `json:"content_type"`
	Size             int64     `json:"size"`
	EventID          uuid.UUID `json:"event_id"`
	UploadedByID     uuid.UUID `json:"uploaded_by_id"`
	URL              string    `json:"url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
