package converter

import (
	"employee-management-api/internal/delivery/dto"
	"employee-management-api/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt,
		UpdatedAt: department.UpdatedAt,
	}
}

// DepartmentsToResponses never returns nil so that an empty association renders as [].
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}

// RolesToResponses returns nil for a nil input, which drops the key from detail views.
func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	if roles == nil {
		return nil
	}

	responses := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = dto.RoleResponse{
			ID:        role.ID,
			Title:     role.Title,
			CreatedAt: role.CreatedAt,
			UpdatedAt: role.UpdatedAt,
		}
	}
	return responses
}

// EmployeeToDetailResponse merges an employee with its resolved department and role set
func EmployeeToDetailResponse(employee *entity.Employee, department *entity.Department, roles []entity.Role) *dto.EmployeeDetailResponse {
	if employee == nil {
		return nil
	}

	return &dto.EmployeeDetailResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
		Department: DepartmentToResponse(department),
		Role:       RolesToResponses(roles),
	}
}

// EmployeeToAssociationResponse converts an employee with preloaded Departments/Roles
func EmployeeToAssociationResponse(employee *entity.Employee) *dto.EmployeeAssociationResponse {
	if employee == nil {
		return nil
	}

	roles := RolesToResponses(employee.Roles)
	if roles == nil {
		roles = []dto.RoleResponse{}
	}

	return &dto.EmployeeAssociationResponse{
		ID:          employee.ID,
		Name:        employee.Name,
		Email:       employee.Email,
		CreatedAt:   employee.CreatedAt,
		UpdatedAt:   employee.UpdatedAt,
		Departments: DepartmentsToResponses(employee.Departments),
		Roles:       roles,
	}
}
