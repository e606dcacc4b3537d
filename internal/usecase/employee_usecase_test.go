package usecase

import (
	"context"
	"sort"
	"testing"

	"employee-management-api/internal/delivery/dto"
	"employee-management-api/internal/domain/entity"
	"employee-management-api/internal/infrastructure/database"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/service"
	"employee-management-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	seed     SeedUsecase
	employee EmployeeUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	log := testutil.NewLogger()

	employeeRepo := repository.NewEmployeeRepository()
	departmentRepo := repository.NewDepartmentRepository()
	roleRepo := repository.NewRoleRepository()
	employeeDepartmentRepo := repository.NewEmployeeDepartmentRepository()
	employeeRoleRepo := repository.NewEmployeeRoleRepository()

	resolver := service.NewRelationshipResolver(employeeDepartmentRepo, employeeRoleRepo, departmentRepo, roleRepo)
	aggregator := service.NewEmployeeAggregator(resolver)

	return &testEnv{
		db:       db,
		seed:     NewSeedUsecase(db, log, database.Reset, departmentRepo, roleRepo, employeeRepo, employeeDepartmentRepo, employeeRoleRepo),
		employee: NewEmployeeUsecase(db, log, employeeRepo, employeeDepartmentRepo, employeeRoleRepo, aggregator),
	}
}

func newSeededEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	require.NoError(t, env.seed.Seed(context.Background()))
	return env
}

func (env *testEnv) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func TestSeedThenListAll(t *testing.T) {
	env := newSeededEnv(t)

	list, err := env.employee.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Employees, 3)

	for _, e := range list.Employees {
		assert.NotNil(t, e.Department, "employee %s has no department", e.Name)
		assert.NotEmpty(t, e.Role, "employee %s has no role", e.Name)
	}

	assert.Equal(t, "Rahul Sharma", list.Employees[0].Name)
	assert.Equal(t, "Engineering", list.Employees[0].Department.Name)
	assert.Equal(t, "Software Engineer", list.Employees[0].Role[0].Title)
	assert.Equal(t, "Marketing", list.Employees[1].Department.Name)
	assert.Equal(t, "Product Manager", list.Employees[2].Role[0].Title)
}

func TestSeedIsRepeatable(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	_, err := env.employee.CreateEmployee(ctx, &dto.CreateEmployeeRequest{Name: "X", Email: "x@x.com", DepartmentID: 1, RoleID: 1})
	require.NoError(t, err)

	require.NoError(t, env.seed.Seed(ctx))
	assert.Equal(t, int64(3), env.count(t, &entity.Employee{}, "1 = 1"))
	assert.Equal(t, int64(3), env.count(t, &entity.EmployeeDepartment{}, "1 = 1"))
}

func TestListEmployeesEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employee.ListEmployees(context.Background())
	assert.ErrorIs(t, err, ErrNoEmployees)

	_, err = env.employee.ListSortedByName(context.Background(), "ASC")
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestCreateThenGetByID(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	created, err := env.employee.CreateEmployee(ctx, &dto.CreateEmployeeRequest{
		Name:         "Meera Iyer",
		Email:        "meera.iyer@example.com",
		DepartmentID: 2,
		RoleID:       3,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Len(t, created.Departments, 1)
	assert.Equal(t, 2, created.Departments[0].ID)
	assert.Equal(t, "Marketing", created.Departments[0].Name)
	require.Len(t, created.Roles, 1)
	assert.Equal(t, 3, created.Roles[0].ID)

	detail, err := env.employee.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meera Iyer", detail.Name)
	require.NotNil(t, detail.Department)
	assert.Equal(t, 2, detail.Department.ID)
	require.Len(t, detail.Role, 1)
	assert.Equal(t, 3, detail.Role[0].ID)
}

func TestCreateWithUnknownDepartmentRollsBack(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employee.CreateEmployee(context.Background(), &dto.CreateEmployeeRequest{
		Name:         "X",
		Email:        "x@x.com",
		DepartmentID: 1,
		RoleID:       1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAssociation)
	assert.Equal(t, int64(0), env.count(t, &entity.Employee{}, "1 = 1"))
}

func TestGetEmployeeNotFound(t *testing.T) {
	env := newSeededEnv(t)

	_, err := env.employee.GetEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateNameOnlyKeepsEmailAndAssociations(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	updated, err := env.employee.UpdateEmployee(ctx, 2, &dto.UpdateEmployeeRequest{Name: "Priya Kapoor"})
	require.NoError(t, err)
	assert.Equal(t, "Priya Kapoor", updated.Name)
	assert.Equal(t, "priya.singh@example.com", updated.Email)
	require.Len(t, updated.Departments, 1)
	assert.Equal(t, "Marketing", updated.Departments[0].Name)
	require.Len(t, updated.Roles, 1)
	assert.Equal(t, "Marketing Specialist", updated.Roles[0].Title)
}

func TestUpdateDepartmentReplacesAllPriorLinks(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	// A stale extra link that the update must clear.
	require.NoError(t, env.db.Create(&entity.EmployeeDepartment{EmployeeID: 1, DepartmentID: 2}).Error)
	require.Equal(t, int64(2), env.count(t, &entity.EmployeeDepartment{}, "employee_id = ?", 1))

	updated, err := env.employee.UpdateEmployee(ctx, 1, &dto.UpdateEmployeeRequest{DepartmentID: 2, RoleID: 3})
	require.NoError(t, err)
	require.Len(t, updated.Departments, 1)
	assert.Equal(t, 2, updated.Departments[0].ID)
	require.Len(t, updated.Roles, 1)
	assert.Equal(t, 3, updated.Roles[0].ID)

	assert.Equal(t, int64(1), env.count(t, &entity.EmployeeDepartment{}, "employee_id = ?", 1))
	assert.Equal(t, int64(1), env.count(t, &entity.EmployeeRole{}, "employee_id = ?", 1))
}

func TestUpdateMissingEmployee(t *testing.T) {
	env := newSeededEnv(t)

	_, err := env.employee.UpdateEmployee(context.Background(), 999, &dto.UpdateEmployeeRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateWithUnknownRoleKeepsPreviousLinks(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	_, err := env.employee.UpdateEmployee(ctx, 1, &dto.UpdateEmployeeRequest{Name: "Renamed", RoleID: 42})
	assert.ErrorIs(t, err, ErrInvalidAssociation)

	detail, err := env.employee.GetEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", detail.Name)
	require.Len(t, detail.Role, 1)
	assert.Equal(t, 1, detail.Role[0].ID)
}

func TestDeleteRemovesJunctionRows(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	require.NoError(t, env.employee.DeleteEmployee(ctx, 3))

	assert.Equal(t, int64(0), env.count(t, &entity.Employee{}, "id = ?", 3))
	assert.Equal(t, int64(0), env.count(t, &entity.EmployeeDepartment{}, "employee_id = ?", 3))
	assert.Equal(t, int64(0), env.count(t, &entity.EmployeeRole{}, "employee_id = ?", 3))

	assert.ErrorIs(t, env.employee.DeleteEmployee(ctx, 3), ErrEmployeeNotFound)
}

func TestListByDepartment(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	list, err := env.employee.ListByDepartment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rahul Sharma", "Ankit Verma"}, detailNames(list.Employees))

	_, err = env.employee.ListByDepartment(ctx, 99)
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestListByDepartmentRepeatsStaleRows(t *testing.T) {
	env := newSeededEnv(t)
	require.NoError(t, env.db.Create(&entity.EmployeeDepartment{EmployeeID: 2, DepartmentID: 2}).Error)

	list, err := env.employee.ListByDepartment(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Priya Singh", "Priya Singh"}, detailNames(list.Employees))
}

func TestListByRole(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	list, err := env.employee.ListByRole(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ankit Verma"}, detailNames(list.Employees))

	_, err = env.employee.ListByRole(ctx, 99)
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestListSortedByName(t *testing.T) {
	env := newSeededEnv(t)
	ctx := context.Background()

	asc, err := env.employee.ListSortedByName(ctx, "ASC")
	require.NoError(t, err)
	ascNames := detailNames(asc.Employees)
	assert.True(t, sort.StringsAreSorted(ascNames), "names not ascending: %v", ascNames)

	desc, err := env.employee.ListSortedByName(ctx, "desc")
	require.NoError(t, err)
	descNames := detailNames(desc.Employees)
	assert.Equal(t, []string{"Rahul Sharma", "Priya Singh", "Ankit Verma"}, descNames)

	_, err = env.employee.ListSortedByName(ctx, "random")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func detailNames(details []dto.EmployeeDetailResponse) []string {
	out := make([]string, len(details))
	for i, d := range details {
		out[i] = d.Name
	}
	return out
}
