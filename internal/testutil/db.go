// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"fmt"
	"io"
	"testing"

	"employee-management-api/config"
	"employee-management-api/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite store with foreign keys enforced.
// A single connection keeps the shared-cache database alive for the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(config.DBConfig{
		Driver:       config.DriverSQLite,
		Name:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close(db)
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewLogger returns a logger that discards output.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
