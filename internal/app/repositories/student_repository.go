package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/pkg/apperrors"
	"github.com/melisd/campushub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student record. Roll numbers are unique; a
// constraint violation maps to apperrors.ErrRollNumberExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (user_id, name, email, phone, course, semester, roll_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		student.UserID, student.Name, student.Email, student.Phone,
		student.Course, student.Semester, student.RollNumber).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "students_roll_number_key") {
			return apperrors.ErrRollNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student record by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, email, phone, course, semester, roll_number, created_at, updated_at
		FROM students
		WHERE id = $1`, id).Scan(
		&student.ID, &student.UserID, &student.Name, &student.Email, &student.Phone,
		&student.Course, &student.Semester, &student.RollNumber, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all student records
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, email, phone, course, semester, roll_number, created_at, updated_at
		FROM students
		ORDER BY roll_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.Name, &student.Email, &student.Phone,
			&student.Course, &student.Semester, &student.RollNumber, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates an existing student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET name = $1, email = $2, phone = $3, course = $4, semester = $5, updated_at = NOW()
		WHERE id = $6`,
		student.Name, student.Email, student.Phone, student.Course, student.Semester, student.ID)

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student record by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
