package dto

import "time"

// Request DTOs

type CreateEmployeeRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	DepartmentID int    `json:"departmentId" validate:"required,gt=0"`
	RoleID       int    `json:"roleId" validate:"required,gt=0"`
}

// UpdateEmployeeRequest is a partial update: zero values mean "leave unchanged".
type UpdateEmployeeRequest struct {
	Name         string `json:"name" validate:"omitempty"`
	Email        string `json:"email" validate:"omitempty"`
	DepartmentID int    `json:"departmentId" validate:"omitempty,gt=0"`
	RoleID       int    `json:"roleId" validate:"omitempty,gt=0"`
}

type DeleteEmployeeRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
}

// Response DTOs

type DepartmentResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RoleResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeDetailResponse is the aggregated view built from the junction tables:
// the last department found and the role set of the last role link.
type EmployeeDetailResponse struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Department *DepartmentResponse `json:"department,omitempty"`
	Role       []RoleResponse      `json:"role,omitempty"`
}

// EmployeeAssociationResponse is the ORM association projection returned after writes.
type EmployeeAssociationResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Departments []DepartmentResponse `json:"departments"`
	Roles       []RoleResponse       `json:"roles"`
}

type EmployeeListResponse struct {
	Employees []EmployeeDetailResponse `json:"employees"`
}

type EmployeeEnvelope struct {
	Employee interface{} `json:"employee"`
}
