package dto

// CreateSubmissionRequest represents submission creation data
type CreateSubmissionRequest struct {
	AssignmentID int64  `json:"assignmentId" binding:"required,min=1"`
	StudentID    *int64 `json:"studentId,omitempty"`
	StudentName  string `json:"studentName,omitempty"`
}

// GradeSubmissionRequest represents grading data for a submission
type GradeSubmissionRequest struct {
	MarksObtained *int    `json:"marksObtained,omitempty" binding:"omitempty,min=0"`
	Feedback      *string `json:"feedback,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=submitted pending graded"`
}
