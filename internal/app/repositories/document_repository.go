package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/pkg/apperrors"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO documents (title, description, file_url, category, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		document.Title, document.Description, document.FileURL, document.Category, document.UploadedBy).
		Scan(&document.ID, &document.CreatedAt, &document.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	document := &models.Document{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, file_url, category, uploaded_by, created_at, updated_at
		FROM documents
		WHERE id = $1`, id).Scan(
		&document.ID, &document.Title, &document.Description, &document.FileURL,
		&document.Category, &document.UploadedBy, &document.CreatedAt, &document.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document: %w", err)
	}

	return document, nil
}

// GetAll retrieves all documents, newest first
func (r *DocumentRepository) GetAll(ctx context.Context) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, file_url, category, uploaded_by, created_at, updated_at
		FROM documents
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*models.Document
	for rows.Next() {
		document := &models.Document{}
		if err := rows.Scan(
			&document.ID, &document.Title, &document.Description, &document.FileURL,
			&document.Category, &document.UploadedBy, &document.CreatedAt, &document.UpdatedAt); err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}

// Update updates an existing document
func (r *DocumentRepository) Update(ctx context.Context, document *models.Document) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE documents
		SET title = $1, description = $2, file_url = $3, category = $4, updated_at = NOW()
		WHERE id = $5`,
		document.Title, document.Description, document.FileURL, document.Category, document.ID)

	if err != nil {
		return fmt.Errorf("error updating document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

// Delete deletes a document by ID
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
