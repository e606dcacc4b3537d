package service

import (
	"context"

	"employee-management-api/internal/domain/entity"
	"employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

// RelationshipResolver walks the junction tables to find an employee's current
// department and role.
//
// Every matching junction row is visited in insertion order and the value
// fetched for the last row wins. Earlier rows are still looked up. Only one row
// per employee is expected, so a result that differs from the first row points
// at stale junction data rather than a resolver choice.
type RelationshipResolver interface {
	ResolveDepartment(ctx context.Context, db *gorm.DB, employeeID int) (*entity.Department, error)
	ResolveRole(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.Role, error)
}

type relationshipResolver struct {
	employeeDepartmentRepo repository.EmployeeDepartmentRepository
	employeeRoleRepo       repository.EmployeeRoleRepository
	departmentRepo         repository.DepartmentRepository
	roleRepo               repository.RoleRepository
}

func NewRelationshipResolver(
	employeeDepartmentRepo repository.EmployeeDepartmentRepository,
	employeeRoleRepo repository.EmployeeRoleRepository,
	departmentRepo repository.DepartmentRepository,
	roleRepo repository.RoleRepository,
) RelationshipResolver {
	return &relationshipResolver{
		employeeDepartmentRepo: employeeDepartmentRepo,
		employeeRoleRepo:       employeeRoleRepo,
		departmentRepo:         departmentRepo,
		roleRepo:               roleRepo,
	}
}

// ResolveDepartment returns nil when the employee has no department link, or when
// the last link points at a department that no longer exists.
func (r *relationshipResolver) ResolveDepartment(ctx context.Context, db *gorm.DB, employeeID int) (*entity.Department, error) {
	links, err := r.employeeDepartmentRepo.FindByEmployeeID(ctx, db, employeeID)
	if err != nil {
		return nil, err
	}

	var department *entity.Department
	for _, link := range links {
		department, err = r.departmentRepo.FindByID(ctx, db, link.DepartmentID)
		if err != nil {
			return nil, err
		}
	}

	return department, nil
}

// ResolveRole returns the full set of roles matching the last link's role id.
// It is nil when the employee has no role link and empty when the role is gone.
func (r *relationshipResolver) ResolveRole(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.Role, error) {
	links, err := r.employeeRoleRepo.FindByEmployeeID(ctx, db, employeeID)
	if err != nil {
		return nil, err
	}

	var roles []entity.Role
	for _, link := range links {
		roles, err = r.roleRepo.FindAllByID(ctx, db, link.RoleID)
		if err != nil {
			return nil, err
		}
	}

	return roles, nil
}
