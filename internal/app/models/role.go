package models

import "fmt"

// Role defines the closed set of user roles. Anything outside this set is
// rejected at write time.
type Role string

const (
	RoleStudent      Role = "student"
	RoleTeacher      Role = "teacher"
	RoleAdmin        Role = "admin"
	RoleHeadmistress Role = "headmistress"
	RolePrincipal    Role = "principal"
)

// DefaultRole is assigned when registration omits the role field.
const DefaultRole = RoleStudent

// AllRoles lists every valid role.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleAdmin, RoleHeadmistress, RolePrincipal}
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleHeadmistress, RolePrincipal:
		return true
	}
	return false
}

// ParseRole converts a string to a Role, rejecting unknown values.
// The empty string maps to DefaultRole.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return DefaultRole, nil
	}
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}
