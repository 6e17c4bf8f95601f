package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/services"
	"github.com/melisd/campushub/internal/middleware"
	"github.com/rs/zerolog"
)

// DocumentController handles document endpoints
type DocumentController struct {
	documentService *services.DocumentService
	logger          zerolog.Logger
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService, logger zerolog.Logger) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		logger:          logger,
	}
}

// CreateDocument registers a new document
// @Summary Create document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDocumentRequest true "Document data"
// @Success 201 {object} dto.APIResponse{data=models.Document} "Document created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Router /documents [post]
func (c *DocumentController) CreateDocument(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.documentService.CreateDocument(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create document")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("documentID", document.ID).Int64("uploadedBy", userID).Msg("Document created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(document))
}

// GetAllDocuments lists all documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Document} "Documents"
// @Router /documents [get]
func (c *DocumentController) GetAllDocuments(ctx *gin.Context) {
	documents, err := c.documentService.GetAllDocuments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(documents))
}

// GetDocumentByID retrieves a document
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=models.Document} "Document"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (c *DocumentController) GetDocumentByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	document, err := c.documentService.GetDocumentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(document))
}

// UpdateDocument applies a partial update to a document
// @Summary Update document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Document} "Updated document"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [put]
func (c *DocumentController) UpdateDocument(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.documentService.UpdateDocument(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(document))
}

// DeleteDocument removes a document
// @Summary Delete document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse "Document deleted"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.documentService.DeleteDocument(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("documentID", id).Msg("Document deleted")

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Document deleted successfully"))
}
