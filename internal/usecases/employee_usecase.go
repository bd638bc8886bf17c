package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// EmployeeFilter narrows the employee list view
type EmployeeFilter struct {
	Name       string `form:"name"`
	Department string `form:"department"`
	Status     string `form:"status"`
}

// EmployeeUsecase handles employee registration and listing
type EmployeeUsecase struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeUsecase creates a new employee usecase
func NewEmployeeUsecase(repo repositories.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo}
}

// Create validates the form and inserts one employee
func (u *EmployeeUsecase) Create(ctx context.Context, input *entities.CreateEmployeeInput) (*entities.Employee, error) {
	var blank []string
	if input.EmployeeCode == "" {
		blank = append(blank, "employee_code")
	}
	if input.Name == "" {
		blank = append(blank, "name")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	employee := entities.NewEmployee(input)
	if err := u.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// List fetches every employee and applies the filter in memory
func (u *EmployeeUsecase) List(ctx context.Context, filter *EmployeeFilter) ([]*entities.Employee, error) {
	employees, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return employees, nil
	}
	result := make([]*entities.Employee, 0, len(employees))
	for _, e := range employees {
		if !substringMatch(e.Name, filter.Name) {
			continue
		}
		if !substringMatch(e.Department, filter.Department) {
			continue
		}
		if !exactMatch(string(e.Status), filter.Status) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// ExportCSV renders the filtered employee list as a spreadsheet
func (u *EmployeeUsecase) ExportCSV(ctx context.Context, filter *EmployeeFilter) ([]byte, error) {
	employees, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.EmployeeCode, e.Name, e.Department, e.Position, e.HireDate,
			formatInt(e.Salary), e.Phone, e.Email, string(e.Status),
		})
	}
	return writeCSV([]string{
		"employee_code", "name", "department", "position", "hire_date",
		"salary", "phone", "email", "status",
	}, rows)
}
