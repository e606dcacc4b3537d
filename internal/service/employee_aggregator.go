package service

import (
	"context"

	"employee-management-api/internal/converter"
	"employee-management-api/internal/delivery/dto"
	"employee-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeAggregator interface {
	Aggregate(ctx context.Context, db *gorm.DB, employee *entity.Employee) (*dto.EmployeeDetailResponse, error)
	AggregateAll(ctx context.Context, db *gorm.DB, employees []entity.Employee) ([]dto.EmployeeDetailResponse, error)
}

type employeeAggregator struct {
	resolver RelationshipResolver
}

func NewEmployeeAggregator(resolver RelationshipResolver) EmployeeAggregator {
	return &employeeAggregator{resolver: resolver}
}

// Aggregate composes the employee's scalar fields with its resolved department and role.
func (a *employeeAggregator) Aggregate(ctx context.Context, db *gorm.DB, employee *entity.Employee) (*dto.EmployeeDetailResponse, error) {
	department, err := a.resolver.ResolveDepartment(ctx, db, employee.ID)
	if err != nil {
		return nil, err
	}

	roles, err := a.resolver.ResolveRole(ctx, db, employee.ID)
	if err != nil {
		return nil, err
	}

	return converter.EmployeeToDetailResponse(employee, department, roles), nil
}

// AggregateAll resolves each employee one after another, preserving input order.
func (a *employeeAggregator) AggregateAll(ctx context.Context, db *gorm.DB, employees []entity.Employee) ([]dto.EmployeeDetailResponse, error) {
	details := make([]dto.EmployeeDetailResponse, 0, len(employees))
	for i := range employees {
		detail, err := a.Aggregate(ctx, db, &employees[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}
