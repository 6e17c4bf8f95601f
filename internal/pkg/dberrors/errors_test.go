package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", uniqueViolation("users_username_key"), true},
		{"wrapped unique violation", fmt.Errorf("error creating user: %w", uniqueViolation("users_email_key")), true},
		{"other pg error", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", uniqueViolation("students_roll_number_key"), "students_roll_number_key", true},
		{"wrapped matching constraint", fmt.Errorf("insert failed: %w", uniqueViolation("students_roll_number_key")), "students_roll_number_key", true},
		{"different constraint", uniqueViolation("users_email_key"), "students_roll_number_key", false},
		{"other pg error on same constraint", &pgconn.PgError{Code: "23503", ConstraintName: "students_roll_number_key"}, "students_roll_number_key", false},
		{"plain error", errors.New("connection refused"), "students_roll_number_key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolationOn(tt.err, tt.constraint))
		})
	}
}
