package services

import (
	"context"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
)

// DefaultTotalMarks is applied when an assignment is created without an
// explicit marks total.
const DefaultTotalMarks = 100

// AssignmentService handles business logic for assignments
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
	}
}

// CreateAssignment registers a new assignment. creatorID comes from the
// authenticated caller, never from the request body.
func (s *AssignmentService) CreateAssignment(ctx context.Context, creatorID int64, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	totalMarks := DefaultTotalMarks
	if req.TotalMarks != nil {
		totalMarks = *req.TotalMarks
	}

	assignment := &models.Assignment{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Subject:     strings.TrimSpace(req.Subject),
		DueDate:     req.DueDate,
		TotalMarks:  totalMarks,
		Semester:    req.Semester,
		CreatedBy:   creatorID,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// GetAssignmentByID retrieves an assignment by ID
func (s *AssignmentService) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// GetAllAssignments lists all assignments ordered by due date
func (s *AssignmentService) GetAllAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// UpdateAssignment applies a partial update to an existing assignment
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.Subject != nil {
		assignment.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.DueDate != nil {
		assignment.DueDate = req.DueDate
	}
	if req.TotalMarks != nil {
		assignment.TotalMarks = *req.TotalMarks
	}
	if req.Semester != nil {
		assignment.Semester = req.Semester
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// DeleteAssignment removes an assignment by ID. Submissions referencing it
// are removed by the database cascade.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
