package repository

import (
	"context"

	"employee-management-api/internal/domain/entity"
	domainRepo "employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) CreateBatch(ctx context.Context, db *gorm.DB, roles []entity.Role) error {
	return db.WithContext(ctx).Create(&roles).Error
}

// FindAllByID is a multi-result lookup: callers receive every matching row as a set.
func (r *roleRepository) FindAllByID(ctx context.Context, db *gorm.DB, id int) ([]entity.Role, error) {
	var roles []entity.Role
	err := db.WithContext(ctx).Where("id = ?", id).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
