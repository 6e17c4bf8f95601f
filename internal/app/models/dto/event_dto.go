package dto

import "time"

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location,omitempty"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
}
