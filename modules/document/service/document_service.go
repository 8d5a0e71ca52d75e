package service

import (
	"context"
	"io"
	"mime/multipart"

	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/storage"
	"guestdesk/modules/document/dto"
	"guestdesk/modules/document/entity"
	"guestdesk/modules/document/mapper"
	"guestdesk/modules/document/repository"

	"github.com/google/uuid"
)

type DocumentServiceInterface interface {
	UploadDocument(ctx context.Context, fileHeader *multipart.FileHeader, eventID uuid.UUID, uploaderID uuid.UUID) (*dto.DocumentResponse, *errors.AppError)
	GetDocumentsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.DocumentResponse, *errors.AppError)
	DeleteDocument(ctx context.Context, id uuid.UUID) *errors.AppError
}

type DocumentService struct {
	repo  repository.DocumentRepositoryInterface
	store storage.Storage
}

func NewDocumentService(repo repository.DocumentRepositoryInterface, store storage.Storage) DocumentServiceInterface {
	return &DocumentService{
		repo:  repo,
		store: store,
	}
}

func (s *DocumentService) UploadDocument(ctx context.Context, fileHeader *multipart.FileHeader, eventID uuid.UUID, uploaderID uuid.UUID) (*dto.DocumentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to read uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to read uploaded file", err)
	}

	storagePath, err := s.store.Upload(ctx, data, fileHeader.Filename)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to store uploaded file", err)
	}

	var contentType *string
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		contentType = &ct
	}

	document := &entity.Document{
		FileName:         fileHeader.Filename,
		OriginalFileName: fileHeader.Filename,
		StoragePath:      storagePath,
		ContentType:      contentType,
		Size:             fileHeader.Size,
		EventID:          eventID,
		UploadedByID:     uploaderID,
	}
	created, err := s.repo.CreateDocument(ctx, document)
	if err != nil {
		// Keep the store consistent with the table.
		if delErr := s.store.Delete(ctx, storagePath); delErr != nil {
			logger.Warn("DocumentService:UploadDocument:Cleanup", "storage_path", storagePath, "error", delErr)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create document", err)
	}

	url, err := s.store.FileURL(ctx, created.StoragePath)
	if err != nil {
		logger.Warn("DocumentService:UploadDocument:FileURL", "storage_path", created.StoragePath, "error", err)
	}
	return mapper.ToDocumentResponse(created, url), nil
}

func (s *DocumentService) GetDocumentsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.DocumentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	documents, err := s.repo.GetDocumentsByEventId(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get documents", err)
	}

	responses := make([]dto.DocumentResponse, len(documents))
	for i := range documents {
		url, err := s.store.FileURL(ctx, documents[i].StoragePath)
		if err != nil {
			logger.Warn("DocumentService:GetDocumentsByEventId:FileURL", "storage_path", documents[i].StoragePath, "error", err)
		}
		responses[i] = *mapper.ToDocumentResponse(&documents[i], url)
	}
	return responses, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	document, err := s.repo.GetDocumentById(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete document", err)
	}
	if document == nil {
		return errors.NewAppError(errors.ErrNotFound, "Document not found", nil)
	}

	// Orphaned blobs are tolerable, a dangling row pointing at nothing is not.
	if err := s.store.Delete(ctx, document.StoragePath); err != nil {
		logger.Warn("DocumentService:DeleteDocument:Blob", "storage_path", document.StoragePath, "error", err)
	}
	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete document", err)
	}
	return nil
}
