package models

import "time"

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location,omitempty" db:"location"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"` // User ID of the creator, taken from the auth context
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
