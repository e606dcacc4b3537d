package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeDepartmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, link *entity.EmployeeDepartment) error
	FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.EmployeeDepartment, error)
	FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID int) ([]entity.EmployeeDepartment, error)
	DeleteByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) (int64, error)
}
