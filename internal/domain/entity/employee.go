package entity

import "time"

// Employee represents a person on the payroll.
// Departments and Roles are loaded through the junction tables and are only
// populated when explicitly preloaded.
type Employee struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Departments []Department `gorm:"many2many:employee_departments;joinForeignKey:EmployeeID;joinReferences:DepartmentID" json:"departments,omitempty"`
	Roles       []Role       `gorm:"many2many:employee_roles;joinForeignKey:EmployeeID;joinReferences:RoleID" json:"roles,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
