package models

import "time"

// Student defines the student record model based on the 'students' table.
// A student record may optionally be linked to a login account.
type Student struct {
	ID         int64     `json:"id" db:"id"`
	UserID     *int64    `json:"userId,omitempty" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Course     string    `json:"course,omitempty" db:"course"`
	Semester   *int      `json:"semester,omitempty" db:"semester"`
	RollNumber string    `json:"rollNumber" db:"roll_number"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
