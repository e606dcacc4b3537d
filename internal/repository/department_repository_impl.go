package repository

import (
	"context"
	"errors"

	"employee-management-api/internal/domain/entity"
	domainRepo "employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) CreateBatch(ctx context.Context, db *gorm.DB, departments []entity.Department) error {
	return db.WithContext(ctx).Create(&departments).Error
}

func (r *departmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Department, error) {
	var department entity.Department
	err := db.WithContext(ctx).Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}
