package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeRoleRepository interface {
	Create(ctx context.Context, db *gorm.DB, link *entity.EmployeeRole) error
	FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.EmployeeRole, error)
	FindByRoleID(ctx context.Context, db *gorm.DB, roleID int) ([]entity.EmployeeRole, error)
	DeleteByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) (int64, error)
}
