package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// EmployeeRepository implements employee data operations
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	m := &models.Employee{
		ID:           employee.ID,
		EmployeeCode: employee.EmployeeCode,
		Name:         employee.Name,
		Department:   employee.Department,
		Position:     employee.Position,
		HireDate:     employee.HireDate,
		Salary:       employee.Salary,
		Phone:        employee.Phone,
		Email:        employee.Email,
		Status:       string(employee.Status),
		CreatedAt:    employee.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns every employee, newest first
func (r *EmployeeRepository) List(ctx context.Context) ([]*entities.Employee, error) {
	var employeeModels []models.Employee
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employeeModels).Error; err != nil {
		return nil, err
	}
	employees := make([]*entities.Employee, 0, len(employeeModels))
	for i := range employeeModels {
		employees = append(employees, r.toEntity(&employeeModels[i]))
	}
	return employees, nil
}

// Count returns the number of employee rows
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EmployeeRepository) toEntity(m *models.Employee) *entities.Employee {
	return &entities.Employee{
		ID:           m.ID,
		EmployeeCode: m.EmployeeCode,
		Name:         m.Name,
		Department:   m.Department,
		Position:     m.Position,
		HireDate:     m.HireDate,
		Salary:       m.Salary,
		Phone:        m.Phone,
		Email:        m.Email,
		Status:       entities.EmployeeStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
