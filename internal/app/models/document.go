package models

import "time"

// Document defines the document model based on the 'documents' table
type Document struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	Category    string    `json:"category" db:"category"`
	UploadedBy  int64     `json:"uploadedBy" db:"uploaded_by"` // User ID of the uploader, taken from the auth context
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
