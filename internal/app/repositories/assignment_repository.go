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

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO assignments (title, description, subject, due_date, total_marks, semester, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		assignment.Title, assignment.Description, assignment.Subject, assignment.DueDate,
		assignment.TotalMarks, assignment.Semester, assignment.CreatedBy).
		Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, subject, due_date, total_marks, semester, created_by, created_at, updated_at
		FROM assignments
		WHERE id = $1`, id).Scan(
		&assignment.ID, &assignment.Title, &assignment.Description, &assignment.Subject,
		&assignment.DueDate, &assignment.TotalMarks, &assignment.Semester, &assignment.CreatedBy,
		&assignment.CreatedAt, &assignment.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return assignment, nil
}

// GetAll retrieves all assignments ordered by due date
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, subject, due_date, total_marks, semester, created_by, created_at, updated_at
		FROM assignments
		ORDER BY due_date NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment := &models.Assignment{}
		if err := rows.Scan(
			&assignment.ID, &assignment.Title, &assignment.Description, &assignment.Subject,
			&assignment.DueDate, &assignment.TotalMarks, &assignment.Semester, &assignment.CreatedBy,
			&assignment.CreatedAt, &assignment.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Update updates an existing assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE assignments
		SET title = $1, description = $2, subject = $3, due_date = $4, total_marks = $5, semester = $6, updated_at = NOW()
		WHERE id = $7`,
		assignment.Title, assignment.Description, assignment.Subject, assignment.DueDate,
		assignment.TotalMarks, assignment.Semester, assignment.ID)

	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// Delete deletes an assignment by ID
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}
