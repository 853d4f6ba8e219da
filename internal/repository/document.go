package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/entity"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *entity.Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListDocuments(ctx context.Context, transactionID uuid.UUID) ([]*entity.Document, error)
}

type documentRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDocumentRepository(pool *pgxpool.Pool, logger *slog.Logger) DocumentRepository {
	return &documentRepository{pool: pool, logger: logger}
}

const documentColumns = `
	id, transaction_id, title, type, original_name, file_path, size, mime_type,
	parsed_data, fields_extracted, uploaded_at`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var doc entity.Document
	err := row.Scan(
		&doc.ID, &doc.TransactionID, &doc.Title, &doc.Type, &doc.OriginalName,
		&doc.FilePath, &doc.Size, &doc.MimeType,
		&doc.ParsedData, &doc.FieldsExtracted, &doc.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) CreateDocument(ctx context.Context, doc *entity.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (
			id, transaction_id, title, type, original_name, file_path,
			size, mime_type, parsed_data, fields_extracted, uploaded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		doc.ID, doc.TransactionID, doc.Title, doc.Type, doc.OriginalName,
		doc.FilePath, doc.Size, doc.MimeType, doc.ParsedData, doc.FieldsExtracted,
	)
	if err != nil {
		r.logger.Error("failed to create document",
			"document_id", doc.ID, "transaction_id", doc.TransactionID, "error", err)
	}
	return err
}

func (r *documentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT`+documentColumns+` FROM documents WHERE id = $1`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, transactionID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+documentColumns+` FROM documents WHERE transaction_id = $1 ORDER BY uploaded_at DESC`,
		transactionID)
	if err != nil {
		r.logger.Error("failed to list documents", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var result []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}
