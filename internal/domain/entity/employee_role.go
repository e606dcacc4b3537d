package entity

import "time"

// EmployeeRole links an employee to the role they currently hold
type EmployeeRole struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int       `gorm:"not null;index" json:"employeeId"`
	RoleID     int       `gorm:"not null;index" json:"roleId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Role     Role     `gorm:"foreignKey:RoleID" json:"-"`
}

func (EmployeeRole) TableName() string {
	return "employee_roles"
}
