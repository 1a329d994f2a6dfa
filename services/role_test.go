package services

import (
	"context"
	"testing"

	apperrors "nexustech/errors"
	"nexustech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRole(t *testing.T) {
	dir := mapDirectory{
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
		"hr@example.com":    {Email: "hr@example.com", Role: models.RoleHR},
	}

	tests := []struct {
		name      string
		email     string
		roles     []models.Role
		want      models.Role
		forbidden bool
	}{
		{"allowed", "admin@example.com", []models.Role{models.RoleAdmin}, models.RoleAdmin, false},
		{"one of several", "hr@example.com", []models.Role{models.RoleAdmin, models.RoleHR}, models.RoleHR, false},
		{"any known user", "hr@example.com", nil, models.RoleHR, false},
		{"wrong role", "hr@example.com", []models.Role{models.RoleAdmin}, "", true},
		{"unknown user", "ghost@example.com", []models.Role{models.RoleEmployee}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := CheckRole(context.Background(), dir, tt.email, tt.roles...)
			if tt.forbidden {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestParseEmployeeRef(t *testing.T) {
	ref, err := ParseEmployeeRef(" Emp@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, EmployeeRef{Kind: EmployeeRefByEmail, Email: "emp@example.com"}, ref)

	ref, err = ParseEmployeeRef("42")
	require.NoError(t, err)
	assert.Equal(t, EmployeeRef{Kind: EmployeeRefByID, ID: 42}, ref)

	for _, bad := range []string{"", "abc", "0", "-3", "4.2"} {
		_, err := ParseEmployeeRef(bad)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation), bad)
	}

	dir := mapDirectory{"emp@example.com": {ID: 7, Email: "emp@example.com"}}
	id, err := EmployeeRef{Kind: EmployeeRefByEmail, Email: "emp@example.com"}.Resolve(context.Background(), dir)
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	_, err = EmployeeRef{Kind: EmployeeRefByEmail, Email: "ghost@example.com"}.Resolve(context.Background(), dir)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFound))
}
