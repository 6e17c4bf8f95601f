package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// PasswordHasher hashes and verifies user passwords with bcrypt.
// The cost is fixed at construction; previously issued hashes keep verifying
// after a cost change because bcrypt embeds its parameters in the hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given work factor.
// Out-of-range costs fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of a plaintext password.
// Hashing the same plaintext twice yields different hashes.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Check verifies a plaintext password against a stored hash.
// Returns false for mismatches and for ill-formed hash input; it never
// surfaces an error so the caller cannot leak the failure reason.
func (h *PasswordHasher) Check(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
