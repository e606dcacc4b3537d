package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"
	domainRepo "employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type employeeDepartmentRepository struct{}

func NewEmployeeDepartmentRepository() domainRepo.EmployeeDepartmentRepository {
	return &employeeDepartmentRepository{}
}

func (r *employeeDepartmentRepository) Create(ctx context.Context, db *gorm.DB, link *entity.EmployeeDepartment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(link).Error
}

func (r *employeeDepartmentRepository) FindByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) ([]entity.EmployeeDepartment, error) {
	var links []entity.EmployeeDepartment
	err := db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("id ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *employeeDepartmentRepository) FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID int) ([]entity.EmployeeDepartment, error) {
	var links []entity.EmployeeDepartment
	err := db.WithContext(ctx).Where("department_id = ?", departmentID).Order("id ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *employeeDepartmentRepository) DeleteByEmployeeID(ctx context.Context, db *gorm.DB, employeeID int) (int64, error) {
	result := db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&entity.EmployeeDepartment{})
	return result.RowsAffected, result.Error
}
