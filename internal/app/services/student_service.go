package services

import (
	"context"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
)

// StudentService handles business logic for student records
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// CreateStudent registers a new student record. Roll number uniqueness is
// enforced by the database constraint.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		UserID:     req.UserID,
		Name:       strings.TrimSpace(req.Name),
		Email:      normalizeEmail(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Course:     strings.TrimSpace(req.Course),
		Semester:   req.Semester,
		RollNumber: strings.TrimSpace(req.RollNumber),
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student record by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents lists all student records ordered by roll number
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent applies a partial update to an existing student record.
// The roll number is immutable after creation.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		student.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		student.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Course != nil {
		student.Course = strings.TrimSpace(*req.Course)
	}
	if req.Semester != nil {
		student.Semester = req.Semester
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student record by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
