package database

import (
	"employee-management-api/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newSQLiteDialector treats DBConfig.Name as the SQLite DSN, e.g. "employees.db?_foreign_keys=on"
// or "file:test?mode=memory&cache=shared&_foreign_keys=on".
func newSQLiteDialector(cfg config.DBConfig) gorm.Dialector {
	return sqlite.Open(cfg.Name)
}
