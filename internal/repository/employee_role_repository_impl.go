package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"
	domainRepo "employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type employeeRoleRepository struct{}

func NewEmployeeRoleRepository() domainRepo.EmployeeRoleRepository {
	return &employeeRoleRepository{}
}

func (r *employeeRoleRepository) Create(ctx context.Context, db *gorm.DB, link *entity.EmployeeRole) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(link).Error
}

func (r *employeeRoleRepository) FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.EmployeeRole, error) {
	var links []entity.EmployeeRole
	err := db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("id ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *employeeRoleRepository) FindByRoleID(ctx context.Context, db *gorm.DB, roleID int) ([]entity.EmployeeRole, error) {
	var links []entity.EmployeeRole
	err := db.WithContext(ctx).Where("role_id = ?", roleID).Order("id ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *employeeRoleRepository) DeleteByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) (int64, error) {
	result := db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&entity.EmployeeRole{})
	return result.RowsAffected, result.Error
}
