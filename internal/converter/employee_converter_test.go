package converter

import (
	"encoding/json"
	"testing"
	"time"

	"employee-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeToDetailResponseOmitsMissingAssociations(t *testing.T) {
	employee := &entity.Employee{ID: 7, Name: "Priya Singh", Email: "priya.singh@example.com"}

	resp := EmployeeToDetailResponse(employee, nil, nil)
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(7), body["id"])
	assert.NotContains(t, body, "department")
	assert.NotContains(t, body, "role")
}

func TestEmployeeToDetailResponseWithAssociations(t *testing.T) {
	now := time.Now()
	employee := &entity.Employee{ID: 1, Name: "Rahul Sharma", Email: "rahul.sharma@example.com"}
	department := &entity.Department{ID: 2, Name: "Marketing", CreatedAt: now}
	roles := []entity.Role{{ID: 3, Title: "Product Manager"}}

	resp := EmployeeToDetailResponse(employee, department, roles)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Marketing", resp.Department.Name)
	assert.Equal(t, now, resp.Department.CreatedAt)
	require.Len(t, resp.Role, 1)
	assert.Equal(t, "Product Manager", resp.Role[0].Title)
}

func TestEmployeeToAssociationResponseRendersEmptyArrays(t *testing.T) {
	resp := EmployeeToAssociationResponse(&entity.Employee{ID: 1, Name: "X", Email: "x@x.com"})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"departments":[]`)
	assert.Contains(t, string(raw), `"roles":[]`)
}

func TestNilInputs(t *testing.T) {
	assert.Nil(t, EmployeeToDetailResponse(nil, nil, nil))
	assert.Nil(t, EmployeeToAssociationResponse(nil))
	assert.Nil(t, DepartmentToResponse(nil))
	assert.Nil(t, RolesToResponses(nil))
}
