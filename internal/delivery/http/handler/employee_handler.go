package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"employee-management-api/internal/delivery/dto"
	"employee-management-api/internal/usecase"
	"employee-management-api/pkg/response"
	"employee-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

func (h *EmployeeHandler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.ListEmployees(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoEmployees) {
			response.NotFound(w, "No employees found.")
			return
		}
		response.InternalServerError(w, "Error fetching all the employees", err)
		return
	}

	response.Success(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id", "Invalid employee ID")
	if !ok {
		return
	}

	employee, err := h.employeeUsecase.GetEmployee(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			response.NotFound(w, "No employee found.")
			return
		}
		response.InternalServerError(w, "Error fetching employee by Id", err)
		return
	}

	response.Success(w, http.StatusOK, dto.EmployeeEnvelope{Employee: employee})
}

func (h *EmployeeHandler) GetEmployeesByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := pathID(w, r, "departmentId", "Invalid department ID")
	if !ok {
		return
	}

	employees, err := h.employeeUsecase.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoEmployees) {
			response.NotFound(w, "No employees found for the specified department.")
			return
		}
		response.InternalServerError(w, "Error fetching the employee by department", err)
		return
	}

	response.Success(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeesByRole(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(w, r, "roleId", "Invalid role ID")
	if !ok {
		return
	}

	employees, err := h.employeeUsecase.ListByRole(r.Context(), roleID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoEmployees) {
			response.NotFound(w, "No employees found for the specified role.")
			return
		}
		response.InternalServerError(w, "Error fetching the employee by role", err)
		return
	}

	response.Success(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeesSortedByName(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.ListSortedByName(r.Context(), r.URL.Query().Get("order"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSortOrder):
			response.Error(w, http.StatusBadRequest, "Invalid sort order", err.Error())
		case errors.Is(err, usecase.ErrNoEmployees):
			response.NotFound(w, "No employees found.")
		default:
			response.InternalServerError(w, "Error fetching the sorted employees", err)
		}
		return
	}

	response.Success(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.CreateEmployee(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Error adding a new employee.", err)
		return
	}

	response.Success(w, http.StatusCreated, employee)
}

// UpdateEmployee reports a missing employee as a server error, like every other update failure.
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id", "Invalid employee ID")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.UpdateEmployee(r.Context(), employeeID, &req)
	if err != nil {
		response.InternalServerError(w, "Error updating the employee's details", err)
		return
	}

	response.Success(w, http.StatusOK, dto.EmployeeEnvelope{Employee: employee})
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.employeeUsecase.DeleteEmployee(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			response.NotFound(w, fmt.Sprintf("Employee with ID %d not found.", req.ID))
			return
		}
		response.InternalServerError(w, "Error deleting the employee", err)
		return
	}

	response.Message(w, http.StatusOK, fmt.Sprintf("Employee with ID %d deleted successfully.", req.ID))
}

// pathID parses an integer route variable, writing a 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, message)
		return 0, false
	}
	return id, true
}
