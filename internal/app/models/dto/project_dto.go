package dto

// CreateProjectRequest represents project creation data
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	StudentID   *int64 `json:"studentId,omitempty"`
	StudentName string `json:"studentName,omitempty"`
	Guide       string `json:"guide,omitempty"`
	Status      string `json:"status,omitempty" binding:"omitempty,oneof=planning in-progress completed submitted"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Guide       *string `json:"guide,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=planning in-progress completed submitted"`
}
