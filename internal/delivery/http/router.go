package http

import (
	"net/http"

	"employee-management-api/internal/delivery/http/handler"
	"employee-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	employeeHandler         *handler.EmployeeHandler
	seedHandler             *handler.SeedHandler
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	employeeHandler *handler.EmployeeHandler,
	seedHandler *handler.SeedHandler,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		employeeHandler:         employeeHandler,
		seedHandler:             seedHandler,
		requestLoggerMiddleware: requestLoggerMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Development bootstrap
	r.router.HandleFunc("/seed_db", r.seedHandler.SeedDatabase).Methods(http.MethodGet, http.MethodOptions)

	// Employee routes
	employees := r.router.PathPrefix("/employees").Subrouter()
	employees.HandleFunc("", r.employeeHandler.GetAllEmployees).Methods(http.MethodGet, http.MethodOptions)
	employees.HandleFunc("/details/{id}", r.employeeHandler.GetEmployee).Methods(http.MethodGet, http.MethodOptions)
	employees.HandleFunc("/department/{departmentId}", r.employeeHandler.GetEmployeesByDepartment).Methods(http.MethodGet, http.MethodOptions)
	employees.HandleFunc("/role/{roleId}", r.employeeHandler.GetEmployeesByRole).Methods(http.MethodGet, http.MethodOptions)
	employees.HandleFunc("/sort-by-name", r.employeeHandler.GetEmployeesSortedByName).Methods(http.MethodGet, http.MethodOptions)
	employees.HandleFunc("/new", r.employeeHandler.CreateEmployee).Methods(http.MethodPost, http.MethodOptions)
	employees.HandleFunc("/update/{id}", r.employeeHandler.UpdateEmployee).Methods(http.MethodPost, http.MethodOptions)
	employees.HandleFunc("/delete", r.employeeHandler.DeleteEmployee).Methods(http.MethodPost, http.MethodOptions)

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
