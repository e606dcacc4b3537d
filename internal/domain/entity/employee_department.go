package entity

import "time"

// EmployeeDepartment links an employee to the department they are assigned to.
// The surrogate ID keeps rows in insertion order.
type EmployeeDepartment struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID   int       `gorm:"not null;index" json:"employeeId"`
	DepartmentID int       `gorm:"not null;index" json:"departmentId"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Employee   Employee   `gorm:"foreignKey:EmployeeID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (EmployeeDepartment) TableName() string {
	return "employee_departments"
}
