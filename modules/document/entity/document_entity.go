package entity

import (
	"guestdesk/core/entity"

	"github.com/google/uuid"
)

type Document struct {
	FileName         string    `db:"file_name"`
	OriginalFileName string    `db:"original_file_name"`
	StoragePath      string    `db:"storage_path"`
	ContentType      *string   `db:"content_type"`
	Size             int64     `db:"size"`
	EventID          uuid.UUID `db:"event_id"`
	UploadedByID     uuid.UUID `db:"uploaded_by_id"`

	entity.BaseEntity
}
