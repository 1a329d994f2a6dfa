package services

import (
	"context"
	"net/http"
	"testing"

	apperrors "nexustech/errors"
	"nexustech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))

	t.Run("defaults role to employee", func(t *testing.T) {
		u := &models.User{Name: "Ann", Email: "Ann@Example.com"}
		require.NoError(t, users.CreateUser(ctx, u))
		assert.Equal(t, models.RoleEmployee, u.Role)
		assert.Equal(t, "ann@example.com", u.Email)
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := users.CreateUser(ctx, &models.User{Name: "Ann again", Email: "ann@example.com"})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserExists))
		assert.Equal(t, http.StatusConflict, apperrors.GetAppError(err).Status())
	})

	t.Run("invalid email", func(t *testing.T) {
		err := users.CreateUser(ctx, &models.User{Name: "x", Email: "not-an-email"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidEmail))
	})
}

func TestGetRoleAndProfile(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	mustCreateUser(t, users, "hr@example.com", models.RoleHR, 0)

	role, err := users.GetRole(ctx, "HR@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleHR, role)

	_, err = users.GetRole(ctx, "nobody@example.com")
	assert.Equal(t, http.StatusNotFound, apperrors.GetAppError(err).Status())

	profile, err := users.GetProfile(ctx, "hr@example.com", "hr@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", profile.Email)

	_, err = users.GetProfile(ctx, "someone@example.com", "hr@example.com")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
}

func TestMakeHR(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	emp := mustCreateUser(t, users, "emp@example.com", models.RoleEmployee, 1000)
	hr := mustCreateUser(t, users, "hr@example.com", models.RoleHR, 0)

	result, err := users.MakeHR(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Modified)

	role, err := users.GetRole(ctx, emp.Email)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHR, role)

	_, err = users.MakeHR(ctx, hr.ID)
	assert.Equal(t, http.StatusConflict, apperrors.GetAppError(err).Status())

	_, err = users.MakeHR(ctx, 9999)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFound))
}

func TestMakeHRKeepsAdmins(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	admin := mustCreateUser(t, users, "admin@example.com", models.RoleAdmin, 0)

	_, err := users.MakeHR(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.GetAppError(err).Status())

	role, err := users.GetRole(ctx, admin.Email)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestUpdateSalary(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	emp := mustCreateUser(t, users, "emp@example.com", models.RoleEmployee, 1000)

	tests := []struct {
		name   string
		salary int64
	}{
		{"equal", 1000},
		{"lower", 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.UpdateSalary(ctx, emp.ID, tt.salary)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).Status())
		})
	}

	result, err := users.UpdateSalary(ctx, emp.ID, 1500)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Modified)

	reloaded, err := users.FindByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1500, reloaded.Salary)
}

func TestListEmployeesAndStaff(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	a := mustCreateUser(t, users, "a@example.com", models.RoleEmployee, 10)
	mustCreateUser(t, users, "b@example.com", models.RoleEmployee, 10)
	mustCreateUser(t, users, "hr@example.com", models.RoleHR, 0)
	mustCreateUser(t, users, "admin@example.com", models.RoleAdmin, 0)

	list, err := users.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Employees, 2)
	require.Len(t, list.DesignationCounts, 1)
	assert.Equal(t, "engineer", list.DesignationCounts[0].Designation)
	assert.EqualValues(t, 2, list.DesignationCounts[0].Count)

	_, err = users.SetVerified(ctx, a.ID, true)
	require.NoError(t, err)

	staff, err := users.ListStaff(ctx)
	require.NoError(t, err)
	emails := make([]string, 0, len(staff))
	for _, u := range staff {
		emails = append(emails, u.Email)
	}
	assert.ElementsMatch(t, []string{"a@example.com", "hr@example.com"}, emails)
}

func TestFireAndIsFired(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	emp := mustCreateUser(t, users, "emp@example.com", models.RoleEmployee, 10)

	fired, err := users.IsFired(ctx, emp.Email)
	require.NoError(t, err)
	assert.False(t, fired)

	result, err := users.Fire(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Modified)

	fired, err = users.IsFired(ctx, emp.Email)
	require.NoError(t, err)
	assert.True(t, fired)

	result, err = users.Fire(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Modified)
}
