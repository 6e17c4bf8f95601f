package services

import (
	"context"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
)

// ProjectService handles business logic for student projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProject registers a new project. The status defaults to planning
// when the request leaves it empty.
func (s *ProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	status := models.ProjectStatus(req.Status)
	if req.Status == "" {
		status = models.ProjectPlanning
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StudentID:   req.StudentID,
		StudentName: strings.TrimSpace(req.StudentName),
		Guide:       strings.TrimSpace(req.Guide),
		Status:      status,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// GetAllProjects lists all projects, newest first
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// UpdateProject applies a partial update to an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Guide != nil {
		project.Guide = strings.TrimSpace(*req.Guide)
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes a project by ID
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}
