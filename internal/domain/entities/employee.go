package entities

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeStatus represents employment state
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeTerminated EmployeeStatus = "terminated"
)

// Employee represents an employee record. EmployeeCode is the business key;
// uniqueness is by convention only and not enforced at this layer.
type Employee struct {
	ID           uuid.UUID      `json:"id"`
	EmployeeCode string         `json:"employeeCode"`
	Name         string         `json:"name"`
	Department   string         `json:"department"`
	Position     string         `json:"position"`
	HireDate     string         `json:"hireDate"`
	Salary       int64          `json:"salary"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Status       EmployeeStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CreateEmployeeInput represents the new-employee form. Required-field checks
// happen in the usecase so blanks are reported together, not via binding.
type CreateEmployeeInput struct {
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	HireDate     string `json:"hireDate"`
	Salary       int64  `json:"salary"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Status       string `json:"status" binding:"omitempty,oneof=active terminated"`
}

// NewEmployee builds an Employee from form input
func NewEmployee(in *CreateEmployeeInput) *Employee {
	status := EmployeeStatus(in.Status)
	if status == "" {
		status = EmployeeActive
	}
	return &Employee{
		ID:           uuid.New(),
		EmployeeCode: in.EmployeeCode,
		Name:         in.Name,
		Department:   in.Department,
		Position:     in.Position,
		HireDate:     in.HireDate,
		Salary:       in.Salary,
		Phone:        in.Phone,
		Email:        in.Email,
		Status:       status,
		CreatedAt:    time.Now(),
	}
}
