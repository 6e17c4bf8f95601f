package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/pkg/apperrors"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO projects (title, description, student_id, student_name, guide, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.StudentID, project.StudentName,
		project.Guide, project.Status).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project := &models.Project{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, student_id, student_name, guide, status, created_at, updated_at
		FROM projects
		WHERE id = $1`, id).Scan(
		&project.ID, &project.Title, &project.Description, &project.StudentID,
		&project.StudentName, &project.Guide, &project.Status, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, student_id, student_name, guide, status, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(
			&project.ID, &project.Title, &project.Description, &project.StudentID,
			&project.StudentName, &project.Guide, &project.Status, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// Update updates an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE projects
		SET title = $1, description = $2, guide = $3, status = $4, updated_at = NOW()
		WHERE id = $5`,
		project.Title, project.Description, project.Guide, project.Status, project.ID)

	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete deletes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}
