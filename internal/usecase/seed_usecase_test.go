package usecase

import (
	"context"
	"errors"
	"testing"

	"employee-management-api/internal/domain/entity"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedLoadsFixedDataSet(t *testing.T) {
	env := newSeededEnv(t)

	var departments []entity.Department
	require.NoError(t, env.db.Order("id").Find(&departments).Error)
	require.Len(t, departments, 2)
	assert.Equal(t, "Engineering", departments[0].Name)
	assert.Equal(t, "Marketing", departments[1].Name)

	var roles []entity.Role
	require.NoError(t, env.db.Order("id").Find(&roles).Error)
	require.Len(t, roles, 3)
	assert.Equal(t, "Marketing Specialist", roles[1].Title)

	var roleLinks []entity.EmployeeRole
	require.NoError(t, env.db.Order("id").Find(&roleLinks).Error)
	require.Len(t, roleLinks, 3)
	assert.Equal(t, roles[2].ID, roleLinks[2].RoleID)
}

func TestSeedStopsWhenResetFails(t *testing.T) {
	db := testutil.NewDB(t)
	resetErr := errors.New("drop table: locked")

	seed := NewSeedUsecase(db, testutil.NewLogger(),
		func(*gorm.DB) error { return resetErr },
		repository.NewDepartmentRepository(),
		repository.NewRoleRepository(),
		repository.NewEmployeeRepository(),
		repository.NewEmployeeDepartmentRepository(),
		repository.NewEmployeeRoleRepository(),
	)

	err := seed.Seed(context.Background())
	assert.ErrorIs(t, err, resetErr)

	var count int64
	require.NoError(t, db.Model(&entity.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedReportsLeftoverRowsAsConflict(t *testing.T) {
	env := newSeededEnv(t)

	seed := NewSeedUsecase(env.db, testutil.NewLogger(),
		func(*gorm.DB) error { return nil },
		repository.NewDepartmentRepository(),
		repository.NewRoleRepository(),
		repository.NewEmployeeRepository(),
		repository.NewEmployeeDepartmentRepository(),
		repository.NewEmployeeRoleRepository(),
	)

	err := seed.Seed(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeedConflict)
	assert.Contains(t, err.Error(), "departments")

	var count int64
	require.NoError(t, env.db.Model(&entity.Department{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
