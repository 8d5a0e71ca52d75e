package mapper

import (
	"guestdesk/modules/document/dto"
	"guestdesk/modules/document/entity"
)

func ToDocumentResponse(document *entity.Document, url string) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:               document.ID,
		FileName:         document.FileName,
		OriginalFileName: document.OriginalFileName,
		ContentType:      document.ContentType,
		Size:             document.Size,
		EventID:          document.EventID,
		UploadedByID:     document.UploadedByID,
		URL:              url,
		CreatedAt:        document.CreatedAt,
	}
}
