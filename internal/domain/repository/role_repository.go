package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, roles []entity.Role) error
	FindAllByID(ctx context.Context, db *gorm.DB, id int) ([]entity.Role, error)
}
