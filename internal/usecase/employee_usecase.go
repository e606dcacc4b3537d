package usecase

import (
	"context"
	"errors"
	"fmt"

	"employee-management-api/internal/converter"
	"employee-management-api/internal/delivery/dto"
	"employee-management-api/internal/domain/entity"
	"employee-management-api/internal/domain/repository"
	"employee-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNoEmployees        = errors.New("no employees found")
	ErrInvalidSortOrder   = errors.New("order must be ASC or DESC")
	ErrInvalidAssociation = errors.New("department or role does not exist")
)

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) (*dto.EmployeeListResponse, error)
	GetEmployee(ctx context.Context, employeeID int) (*dto.EmployeeDetailResponse, error)
	ListByDepartment(ctx context.Context, departmentID int) (*dto.EmployeeListResponse, error)
	ListByRole(ctx context.Context, roleID int) (*dto.EmployeeListResponse, error)
	ListSortedByName(ctx context.Context, order string) (*dto.EmployeeListResponse, error)
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeAssociationResponse, error)
	UpdateEmployee(ctx context.Context, employeeID int, req *dto.UpdateEmployeeRequest) (*dto.EmployeeAssociationResponse, error)
	DeleteEmployee(ctx context.Context, employeeID int) error
}

type employeeUsecase struct {
	db                     *gorm.DB
	log                    *logrus.Logger
	employeeRepo           repository.EmployeeRepository
	employeeDepartmentRepo repository.EmployeeDepartmentRepository
	employeeRoleRepo       repository.EmployeeRoleRepository
	aggregator             service.EmployeeAggregator
}

func NewEmployeeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	employeeDepartmentRepo repository.EmployeeDepartmentRepository,
	employeeRoleRepo repository.EmployeeRoleRepository,
	aggregator service.EmployeeAggregator,
) EmployeeUsecase {
	return &employeeUsecase{
		db:                     db,
		log:                    log,
		employeeRepo:           employeeRepo,
		employeeDepartmentRepo: employeeDepartmentRepo,
		employeeRoleRepo:       employeeRoleRepo,
		aggregator:             aggregator,
	}
}

func (u *employeeUsecase) ListEmployees(ctx context.Context) (*dto.EmployeeListResponse, error) {
	employees, err := u.employeeRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all employees: %+v", err)
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	return u.aggregateList(ctx, employees)
}

func (u *employeeUsecase) GetEmployee(ctx context.Context, employeeID int) (*dto.EmployeeDetailResponse, error) {
	employee, err := u.employeeRepo.FindByID(ctx, u.db, employeeID)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	detail, err := u.aggregator.Aggregate(ctx, u.db, employee)
	if err != nil {
		u.log.Warnf("Failed to resolve employee %d details: %+v", employeeID, err)
		return nil, err
	}

	return detail, nil
}

func (u *employeeUsecase) ListByDepartment(ctx context.Context, departmentID int) (*dto.EmployeeListResponse, error) {
	links, err := u.employeeDepartmentRepo.FindByDepartmentID(ctx, u.db, departmentID)
	if err != nil {
		u.log.Warnf("Failed to find department links: %+v", err)
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNoEmployees
	}

	employeeIDs := make([]int, len(links))
	for i, link := range links {
		employeeIDs[i] = link.EmployeeID
	}

	return u.listByEmployeeIDs(ctx, employeeIDs)
}

func (u *employeeUsecase) ListByRole(ctx context.Context, roleID int) (*dto.EmployeeListResponse, error) {
	links, err := u.employeeRoleRepo.FindByRoleID(ctx, u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role links: %+v", err)
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNoEmployees
	}

	employeeIDs := make([]int, len(links))
	for i, link := range links {
		employeeIDs[i] = link.EmployeeID
	}

	return u.listByEmployeeIDs(ctx, employeeIDs)
}

func (u *employeeUsecase) ListSortedByName(ctx context.Context, order string) (*dto.EmployeeListResponse, error) {
	sortOrder, ok := entity.ParseSortOrder(order)
	if !ok {
		return nil, ErrInvalidSortOrder
	}

	employees, err := u.employeeRepo.FindAllOrderedByName(ctx, u.db, sortOrder)
	if err != nil {
		u.log.Warnf("Failed to find sorted employees: %+v", err)
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	return u.aggregateList(ctx, employees)
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeAssociationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee := &entity.Employee{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := u.employeeRepo.Create(ctx, tx, employee); err != nil {
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, err
	}

	if err := u.assignDepartment(ctx, tx, employee.ID, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := u.assignRole(ctx, tx, employee.ID, req.RoleID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.findWithAssociations(ctx, employee.ID)
}

func (u *employeeUsecase) UpdateEmployee(ctx context.Context, employeeID int, req *dto.UpdateEmployeeRequest) (*dto.EmployeeAssociationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByIDForUpdate(ctx, tx, employeeID)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		u.log.Warnf("Failed to find employee: %+v", "employee not found")
		return nil, ErrEmployeeNotFound
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Email != "" {
		employee.Email = req.Email
	}

	if err := u.employeeRepo.Update(ctx, tx, employee); err != nil {
		u.log.Warnf("Failed to update employee: %+v", err)
		return nil, err
	}

	// Replacing every prior link keeps one active department and role per employee.
	if req.DepartmentID != 0 {
		if _, err := u.employeeDepartmentRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			u.log.Warnf("Failed to clear department links: %+v", err)
			return nil, err
		}
		if err := u.assignDepartment(ctx, tx, employeeID, req.DepartmentID); err != nil {
			return nil, err
		}
	}

	if req.RoleID != 0 {
		if _, err := u.employeeRoleRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			u.log.Warnf("Failed to clear role links: %+v", err)
			return nil, err
		}
		if err := u.assignRole(ctx, tx, employeeID, req.RoleID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.findWithAssociations(ctx, employeeID)
}

func (u *employeeUsecase) DeleteEmployee(ctx context.Context, employeeID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.employeeDepartmentRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
		u.log.Warnf("Failed to delete department links: %+v", err)
		return err
	}
	if _, err := u.employeeRoleRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
		u.log.Warnf("Failed to delete role links: %+v", err)
		return err
	}

	affectedRows, err := u.employeeRepo.Delete(ctx, tx, employeeID)
	if err != nil {
		u.log.Warnf("Failed delete employee: %+v", err)
		return err
	}
	if affectedRows == 0 {
		u.log.Warnf("Failed delete employee: %+v", "employee not found")
		return ErrEmployeeNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *employeeUsecase) assignDepartment(ctx context.Context, tx *gorm.DB, employeeID, departmentID int) error {
	link := &entity.EmployeeDepartment{EmployeeID: employeeID, DepartmentID: departmentID}
	if err := u.employeeDepartmentRepo.Create(ctx, tx, link); err != nil {
		u.log.Warnf("Failed to link employee %d to department %d: %+v", employeeID, departmentID, err)
		if isForeignKeyError(err, "department") {
			return fmt.Errorf("%w: department %d: %v", ErrInvalidAssociation, departmentID, err)
		}
		return err
	}
	return nil
}

func (u *employeeUsecase) assignRole(ctx context.Context, tx *gorm.DB, employeeID, roleID int) error {
	link := &entity.EmployeeRole{EmployeeID: employeeID, RoleID: roleID}
	if err := u.employeeRoleRepo.Create(ctx, tx, link); err != nil {
		u.log.Warnf("Failed to link employee %d to role %d: %+v", employeeID, roleID, err)
		if isForeignKeyError(err, "role") {
			return fmt.Errorf("%w: role %d: %v", ErrInvalidAssociation, roleID, err)
		}
		return err
	}
	return nil
}

// findWithAssociations re-reads the employee through the ORM association rather
// than the resolver, so writes echo every linked department and role.
func (u *employeeUsecase) findWithAssociations(ctx context.Context, employeeID int) (*dto.EmployeeAssociationResponse, error) {
	employee, err := u.employeeRepo.FindWithAssociations(ctx, u.db, employeeID)
	if err != nil {
		u.log.Warnf("Failed to reload employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	return converter.EmployeeToAssociationResponse(employee), nil
}

func (u *employeeUsecase) listByEmployeeIDs(ctx context.Context, employeeIDs []int) (*dto.EmployeeListResponse, error) {
	details := make([]dto.EmployeeDetailResponse, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		employee, err := u.employeeRepo.FindByID(ctx, u.db, employeeID)
		if err != nil {
			u.log.Warnf("Failed to find employee: %+v", err)
			return nil, err
		}
		if employee == nil {
			continue
		}

		detail, err := u.aggregator.Aggregate(ctx, u.db, employee)
		if err != nil {
			u.log.Warnf("Failed to resolve employee %d details: %+v", employeeID, err)
			return nil, err
		}
		details = append(details, *detail)
	}

	return &dto.EmployeeListResponse{Employees: details}, nil
}

func (u *employeeUsecase) aggregateList(ctx context.Context, employees []entity.Employee) (*dto.EmployeeListResponse, error) {
	details, err := u.aggregator.AggregateAll(ctx, u.db, employees)
	if err != nil {
		u.log.Warnf("Failed to resolve employee details: %+v", err)
		return nil, err
	}

	return &dto.EmployeeListResponse{Employees: details}, nil
}
