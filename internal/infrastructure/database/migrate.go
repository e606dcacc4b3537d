package database

import (
	"fmt"

	"employee-management-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupJoinTables binds the many2many associations on Employee to the explicit
// junction models so that preloads read the same rows the repositories write.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.Employee{}, "Departments", &entity.EmployeeDepartment{}); err != nil {
		return fmt.Errorf("setup employee_departments join table: %w", err)
	}
	if err := db.SetupJoinTable(&entity.Employee{}, "Roles", &entity.EmployeeRole{}); err != nil {
		return fmt.Errorf("setup employee_roles join table: %w", err)
	}
	return nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Department{},
		&entity.Role{},
		&entity.Employee{},
		&entity.EmployeeDepartment{},
		&entity.EmployeeRole{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Reset drops every table, junctions first, and migrates again.
func Reset(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&entity.EmployeeDepartment{},
		&entity.EmployeeRole{},
		&entity.Employee{},
		&entity.Department{},
		&entity.Role{},
	)
	if err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	logrus.Info("Database schema reset")
	return nil
}
