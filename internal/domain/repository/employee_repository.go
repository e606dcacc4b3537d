package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, db *gorm.DB, employee *entity.Employee) error
	CreateBatch(ctx context.Context, db *gorm.DB, employees []entity.Employee) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Employee, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id int) (*entity.Employee, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Employee, error)
	FindAllOrderedByName(ctx context.Context, db *gorm.DB, order entity.SortOrder) ([]entity.Employee, error)
	FindWithAssociations(ctx context.Context, db *gorm.DB, id int) (*entity.Employee, error)
	Update(ctx context.Context, db *gorm.DB, employee *entity.Employee) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
