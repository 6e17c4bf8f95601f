package models

import "time"

// Assignment defines the assignment model based on the 'assignments' table
type Assignment struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Subject     string     `json:"subject,omitempty" db:"subject"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
	TotalMarks  int        `json:"totalMarks" db:"total_marks"`
	Semester    *int       `json:"semester,omitempty" db:"semester"`
	CreatedBy   int64      `json:"createdBy" db:"created_by"` // User ID of the creator, taken from the auth context
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
