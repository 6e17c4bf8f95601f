package models

import "time"

// ProjectStatus defines the allowed project states
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectSubmitted  ProjectStatus = "submitted"
)

// Valid reports whether the status is one of the enumerated values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectSubmitted:
		return true
	}
	return false
}

// Project defines the project model based on the 'projects' table
type Project struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description,omitempty" db:"description"`
	StudentID   *int64        `json:"studentId,omitempty" db:"student_id"`
	StudentName string        `json:"studentName,omitempty" db:"student_name"`
	Guide       string        `json:"guide,omitempty" db:"guide"`
	Status      ProjectStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}
