package repository

import (
	"context"
	"errors"

	"employee-management-api/internal/domain/entity"
	domainRepo "employee-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(ctx context.Context, db *gorm.DB, employee *entity.Employee) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(employee).Error
}

func (r *employeeRepository) CreateBatch(ctx context.Context, db *gorm.DB, employees []entity.Employee) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(&employees).Error
}

func (r *employeeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// FindByIDForUpdate locks the employee row until tx ends, serialising concurrent
// rewrites of its junction rows. SQLite ignores the lock clause.
func (r *employeeRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id int) (*entity.Employee, error) {
	var employee entity.Employee
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindAllOrderedByName(ctx context.Context, db *gorm.DB, order entity.SortOrder) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}, Desc: order.Desc()}).
		Order("id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// FindWithAssociations loads the employee together with the departments and roles
// reachable through the junction tables, projected to their public columns.
func (r *employeeRepository) FindWithAssociations(ctx context.Context, db *gorm.DB, id int) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.WithContext(ctx).
		Preload("Departments", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "created_at", "updated_at")
		}).
		Preload("Roles", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "title", "created_at", "updated_at")
		}).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, db *gorm.DB, employee *entity.Employee) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Employee{})
	return result.RowsAffected, result.Error
}
