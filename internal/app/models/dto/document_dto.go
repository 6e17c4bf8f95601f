package dto

// CreateDocumentRequest represents document creation data
type CreateDocumentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl" binding:"required,url"`
	Category    string `json:"category,omitempty"`
}

// UpdateDocumentRequest represents a partial document update
type UpdateDocumentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	FileURL     *string `json:"fileUrl,omitempty" binding:"omitempty,url"`
	Category    *string `json:"category,omitempty"`
}
