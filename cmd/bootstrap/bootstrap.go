package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employee-management-api/config"
	deliveryHttp "employee-management-api/internal/delivery/http"
	"employee-management-api/internal/delivery/http/handler"
	"employee-management-api/internal/delivery/http/middleware"
	"employee-management-api/internal/infrastructure/database"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/service"
	"employee-management-api/internal/usecase"
	"employee-management-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database connected and migrated successfully")

	// Initialize all layers
	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: NewHandler(db, logrus.StandardLogger()),
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// NewHandler wires repositories, services, usecases and handlers into the HTTP router
func NewHandler(db *gorm.DB, log *logrus.Logger) http.Handler {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository()
	departmentRepo := repository.NewDepartmentRepository()
	roleRepo := repository.NewRoleRepository()
	employeeDepartmentRepo := repository.NewEmployeeDepartmentRepository()
	employeeRoleRepo := repository.NewEmployeeRoleRepository()

	// Initialize services
	resolver := service.NewRelationshipResolver(employeeDepartmentRepo, employeeRoleRepo, departmentRepo, roleRepo)
	aggregator := service.NewEmployeeAggregator(resolver)

	// Initialize usecases
	employeeUsecase := usecase.NewEmployeeUsecase(db, log, employeeRepo, employeeDepartmentRepo, employeeRoleRepo, aggregator)
	seedUsecase := usecase.NewSeedUsecase(db, log, database.Reset, departmentRepo, roleRepo, employeeRepo, employeeDepartmentRepo, employeeRoleRepo)

	// Initialize handlers
	employeeHandler := handler.NewEmployeeHandler(employeeUsecase, customValidator)
	seedHandler := handler.NewSeedHandler(seedUsecase)

	// Initialize middleware
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(employeeHandler, seedHandler, requestLoggerMiddleware, corsMiddleware)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection pool
func (app *App) Close() {
	if err := database.Close(app.DB); err != nil {
		logrus.Warnf("Failed to close database: %v", err)
	}
}
