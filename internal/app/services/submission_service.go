package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
	"github.com/melisd/campushub/internal/pkg/apperrors"
)

// SubmissionService handles business logic for assignment submissions
type SubmissionService struct {
	submissionRepo *repositories.SubmissionRepository
	assignmentRepo *repositories.AssignmentRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	submissionRepo *repositories.SubmissionRepository,
	assignmentRepo *repositories.AssignmentRepository,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CreateSubmission records a submission against an existing assignment.
// The submission date is set server-side and the status starts as submitted.
func (s *SubmissionService) CreateSubmission(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		AssignmentID:   req.AssignmentID,
		StudentID:      req.StudentID,
		StudentName:    strings.TrimSpace(req.StudentName),
		SubmissionDate: time.Now().UTC(),
		Status:         models.SubmissionSubmitted,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

// GetSubmissionByID retrieves a submission by ID
func (s *SubmissionService) GetSubmissionByID(ctx context.Context, id int64) (*models.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// GetAllSubmissions lists submissions, optionally filtered by assignment
func (s *SubmissionService) GetAllSubmissions(ctx context.Context, assignmentID *int64) ([]*models.Submission, error) {
	return s.submissionRepo.GetAll(ctx, assignmentID)
}

// GradeSubmission updates the grading fields of a submission. Awarding
// marks without an explicit status moves the submission to graded, and
// marks may not exceed the assignment's total.
func (s *SubmissionService) GradeSubmission(ctx context.Context, id int64, req *dto.GradeSubmissionRequest) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MarksObtained != nil {
		assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
		if err != nil {
			return nil, err
		}
		if *req.MarksObtained > assignment.TotalMarks {
			return nil, fmt.Errorf("%w: marks cannot exceed the assignment total of %d",
				apperrors.ErrValidationFailed, assignment.TotalMarks)
		}
		submission.MarksObtained = req.MarksObtained
		submission.Status = models.SubmissionGraded
	}
	if req.Feedback != nil {
		submission.Feedback = *req.Feedback
	}
	if req.Status != nil {
		submission.Status = models.SubmissionStatus(*req.Status)
	}

	if err := s.submissionRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

// DeleteSubmission removes a submission by ID
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id int64) error {
	return s.submissionRepo.Delete(ctx, id)
}
