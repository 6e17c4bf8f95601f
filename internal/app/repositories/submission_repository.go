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

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO submissions (assignment_id, student_id, student_name, submission_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		submission.AssignmentID, submission.StudentID, submission.StudentName,
		submission.SubmissionDate, submission.Status).
		Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating submission: %w", err)
	}

	return nil
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	submission := &models.Submission{}
	err := r.db.QueryRow(ctx, `
		SELECT id, assignment_id, student_id, student_name, submission_date, marks_obtained, feedback, status, created_at, updated_at
		FROM submissions
		WHERE id = $1`, id).Scan(
		&submission.ID, &submission.AssignmentID, &submission.StudentID, &submission.StudentName,
		&submission.SubmissionDate, &submission.MarksObtained, &submission.Feedback,
		&submission.Status, &submission.CreatedAt, &submission.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return submission, nil
}

// GetAll retrieves all submissions, optionally filtered by assignment
func (r *SubmissionRepository) GetAll(ctx context.Context, assignmentID *int64) ([]*models.Submission, error) {
	query := `
		SELECT id, assignment_id, student_id, student_name, submission_date, marks_obtained, feedback, status, created_at, updated_at
		FROM submissions`
	args := []interface{}{}
	if assignmentID != nil {
		query += ` WHERE assignment_id = $1`
		args = append(args, *assignmentID)
	}
	query += ` ORDER BY submission_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		submission := &models.Submission{}
		if err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID, &submission.StudentName,
			&submission.SubmissionDate, &submission.MarksObtained, &submission.Feedback,
			&submission.Status, &submission.CreatedAt, &submission.UpdatedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// Update updates grading fields of an existing submission
func (r *SubmissionRepository) Update(ctx context.Context, submission *models.Submission) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE submissions
		SET marks_obtained = $1, feedback = $2, status = $3, updated_at = NOW()
		WHERE id = $4`,
		submission.MarksObtained, submission.Feedback, submission.Status, submission.ID)

	if err != nil {
		return fmt.Errorf("error updating submission: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}

// Delete deletes a submission by ID
func (r *SubmissionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting submission: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}
