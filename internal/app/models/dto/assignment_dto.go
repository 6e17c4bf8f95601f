package dto

import "time"

// CreateAssignmentRequest represents assignment creation data
type CreateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	TotalMarks  *int       `json:"totalMarks,omitempty" binding:"omitempty,min=1"`
	Semester    *int       `json:"semester,omitempty" binding:"omitempty,min=1,max=12"`
}

// UpdateAssignmentRequest represents a partial assignment update
type UpdateAssignmentRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Subject     *string    `json:"subject,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	TotalMarks  *int       `json:"totalMarks,omitempty" binding:"omitempty,min=1"`
	Semester    *int       `json:"semester,omitempty" binding:"omitempty,min=1,max=12"`
}
