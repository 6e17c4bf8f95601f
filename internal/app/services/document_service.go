package services

import (
	"context"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
)

// DefaultDocumentCategory is applied when a document is created without one.
const DefaultDocumentCategory = "general"

// DocumentService handles business logic for institutional documents
type DocumentService struct {
	documentRepo *repositories.DocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentRepo *repositories.DocumentRepository) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
	}
}

// CreateDocument registers a new document entry. uploaderID comes from the
// authenticated caller, never from the request body.
func (s *DocumentService) CreateDocument(ctx context.Context, uploaderID int64, req *dto.CreateDocumentRequest) (*models.Document, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultDocumentCategory
	}

	document := &models.Document{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		FileURL:     req.FileURL,
		Category:    category,
		UploadedBy:  uploaderID,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	return document, nil
}

// GetDocumentByID retrieves a document by ID
func (s *DocumentService) GetDocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

// GetAllDocuments lists all documents, newest first
func (s *DocumentService) GetAllDocuments(ctx context.Context) ([]*models.Document, error) {
	return s.documentRepo.GetAll(ctx)
}

// UpdateDocument applies a partial update to an existing document
func (s *DocumentService) UpdateDocument(ctx context.Context, id int64, req *dto.UpdateDocumentRequest) (*models.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		document.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		document.Description = *req.Description
	}
	if req.FileURL != nil {
		document.FileURL = *req.FileURL
	}
	if req.Category != nil {
		document.Category = strings.TrimSpace(*req.Category)
	}

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, err
	}

	return document, nil
}

// DeleteDocument removes a document by ID
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	return s.documentRepo.Delete(ctx, id)
}
