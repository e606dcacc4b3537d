package database

import (
	"fmt"

	"employee-management-api/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newPostgresDialector(cfg config.DBConfig) gorm.Dialector {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)
	return postgres.Open(dsn)
}
