package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id"`                          // Unique identifier for the user
	Username     string     `json:"username" db:"username"`              // Unique login/display identifier
	Email        string     `json:"email" db:"email"`                    // User's email address, stored lowercased and trimmed
	PasswordHash string     `json:"-" db:"password_hash"`                // Hashed password, excluded from every JSON response
	FullName     string     `json:"fullName" db:"full_name"`             // User's full display name
	Role         Role       `json:"role" db:"role"`                      // User's role from the closed enumeration
	IsActive     bool       `json:"isActive" db:"is_active"`             // Login is refused when false, even with correct credentials
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"` // Timestamp of the last successful login (nullable)
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`           // Timestamp when the user was created
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`           // Timestamp when the user was last updated
}
