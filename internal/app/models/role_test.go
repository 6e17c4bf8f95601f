package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{"student", "student", RoleStudent, false},
		{"teacher", "teacher", RoleTeacher, false},
		{"admin", "admin", RoleAdmin, false},
		{"headmistress", "headmistress", RoleHeadmistress, false},
		{"principal", "principal", RolePrincipal, false},
		{"empty defaults to student", "", RoleStudent, false},
		{"unknown role", "superuser", "", true},
		{"case sensitive", "Admin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range AllRoles() {
		assert.True(t, role.Valid(), "expected %q to be valid", role)
	}

	assert.False(t, Role("").Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestDefaultRole(t *testing.T) {
	assert.Equal(t, RoleStudent, DefaultRole)
}
