package repository

import (
	"context"
	"database/sql"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/document/entity"

	"github.com/google/uuid"
)

type DocumentRepositoryInterface interface {
	CreateDocument(ctx context.Context, document *entity.Document) (*entity.Document, error)
	GetDocumentById(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetDocumentsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

type DocumentRepository struct {
	DB database.IDatabase
}

func NewDocumentRepository(db database.IDatabase) DocumentRepositoryInterface {
	return &DocumentRepository{DB: db}
}

const documentColumns = `id, file_name, original_file_name, storage_path, content_type, size, event_id, uploaded_by_id, created_at, updated_at`

func (r *DocumentRepository) CreateDocument(ctx context.Context, document *entity.Document) (*entity.Document, error) {
	query := `
		INSERT INTO documents (file_name, original_file_name, storage_path, content_type, size, event_id, uploaded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	var created entity.Document
	err := r.DB.GetContext(ctx, &created, query,
		document.FileName,
		document.OriginalFileName,
		document.StoragePath,
		document.ContentType,
		document.Size,
		document.EventID,
		document.UploadedByID,
	)
	if err != nil {
		logger.Error("DocumentRepository:CreateDocument", err)
		return nil, err
	}
	return &created, nil
}

func (r *DocumentRepository) GetDocumentById(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	err := r.DB.GetContext(ctx, &document, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:GetDocumentById", err)
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepository) GetDocumentsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE event_id = $1 ORDER BY created_at DESC`
	var documents []entity.Document
	err := r.DB.SelectContext(ctx, &documents, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Document{}, nil
		}
		logger.Error("DocumentRepository:GetDocumentsByEventId", err)
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM documents
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("DocumentRepository:DeleteDocument", err)
		return err
	}
	return nil
}
