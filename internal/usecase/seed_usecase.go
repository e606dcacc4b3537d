package usecase

import (
	"context"
	"errors"
	"fmt"

	"employee-management-api/internal/domain/entity"
	"employee-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSeedConflict is returned when sample rows collide with data the reset left behind.
var ErrSeedConflict = errors.New("seed data already present")

type SeedUsecase interface {
	Seed(ctx context.Context) error
}

// SchemaResetter drops and recreates every table.
type SchemaResetter func(db *gorm.DB) error

type seedUsecase struct {
	db                     *gorm.DB
	log                    *logrus.Logger
	resetSchema            SchemaResetter
	departmentRepo         repository.DepartmentRepository
	roleRepo               repository.RoleRepository
	employeeRepo           repository.EmployeeRepository
	employeeDepartmentRepo repository.EmployeeDepartmentRepository
	employeeRoleRepo       repository.EmployeeRoleRepository
}

func NewSeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	resetSchema SchemaResetter,
	departmentRepo repository.DepartmentRepository,
	roleRepo repository.RoleRepository,
	employeeRepo repository.EmployeeRepository,
	employeeDepartmentRepo repository.EmployeeDepartmentRepository,
	employeeRoleRepo repository.EmployeeRoleRepository,
) SeedUsecase {
	return &seedUsecase{
		db:                     db,
		log:                    log,
		resetSchema:            resetSchema,
		departmentRepo:         departmentRepo,
		roleRepo:               roleRepo,
		employeeRepo:           employeeRepo,
		employeeDepartmentRepo: employeeDepartmentRepo,
		employeeRoleRepo:       employeeRoleRepo,
	}
}

// Seed wipes the store and loads the fixed sample data set.
func (u *seedUsecase) Seed(ctx context.Context) error {
	if err := u.resetSchema(u.db.WithContext(ctx)); err != nil {
		u.log.Warnf("Failed to reset schema: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	departments := []entity.Department{
		{Name: "Engineering"},
		{Name: "Marketing"},
	}
	if err := u.departmentRepo.CreateBatch(ctx, tx, departments); err != nil {
		u.log.Warnf("Failed to seed departments: %+v", err)
		if isDuplicateKeyError(err, "departments") {
			return fmt.Errorf("%w: departments: %v", ErrSeedConflict, err)
		}
		return err
	}

	roles := []entity.Role{
		{Title: "Software Engineer"},
		{Title: "Marketing Specialist"},
		{Title: "Product Manager"},
	}
	if err := u.roleRepo.CreateBatch(ctx, tx, roles); err != nil {
		u.log.Warnf("Failed to seed roles: %+v", err)
		if isDuplicateKeyError(err, "roles") {
			return fmt.Errorf("%w: roles: %v", ErrSeedConflict, err)
		}
		return err
	}

	employees := []entity.Employee{
		{Name: "Rahul Sharma", Email: "rahul.sharma@example.com"},
		{Name: "Priya Singh", Email: "priya.singh@example.com"},
		{Name: "Ankit Verma", Email: "ankit.verma@example.com"},
	}
	if err := u.employeeRepo.CreateBatch(ctx, tx, employees); err != nil {
		u.log.Warnf("Failed to seed employees: %+v", err)
		return err
	}

	assignments := []struct {
		employee, department, role int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 0, 2},
	}
	for _, a := range assignments {
		departmentLink := &entity.EmployeeDepartment{
			EmployeeID:   employees[a.employee].ID,
			DepartmentID: departments[a.department].ID,
		}
		if err := u.employeeDepartmentRepo.Create(ctx, tx, departmentLink); err != nil {
			u.log.Warnf("Failed to seed department link: %+v", err)
			return err
		}

		roleLink := &entity.EmployeeRole{
			EmployeeID: employees[a.employee].ID,
			RoleID:     roles[a.role].ID,
		}
		if err := u.employeeRoleRepo.Create(ctx, tx, roleLink); err != nil {
			u.log.Warnf("Failed to seed role link: %+v", err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Seeded %d departments, %d roles, %d employees", len(departments), len(roles), len(employees))
	return nil
}
