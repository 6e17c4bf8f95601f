package models

import "time"

// SubmissionStatus defines the allowed submission states
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionGraded    SubmissionStatus = "graded"
)

// Valid reports whether the status is one of the enumerated values.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionSubmitted, SubmissionPending, SubmissionGraded:
		return true
	}
	return false
}

// Submission defines the submission model based on the 'submissions' table
type Submission struct {
	ID             int64            `json:"id" db:"id"`
	AssignmentID   int64            `json:"assignmentId" db:"assignment_id"`
	StudentID      *int64           `json:"studentId,omitempty" db:"student_id"`
	StudentName    string           `json:"studentName,omitempty" db:"student_name"`
	SubmissionDate time.Time        `json:"submissionDate" db:"submission_date"`
	MarksObtained  *int             `json:"marksObtained,omitempty" db:"marks_obtained"`
	Feedback       string           `json:"feedback,omitempty" db:"feedback"`
	Status         SubmissionStatus `json:"status" db:"status"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`
}
