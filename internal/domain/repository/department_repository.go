package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, departments []entity.Department) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Department, error)
}
