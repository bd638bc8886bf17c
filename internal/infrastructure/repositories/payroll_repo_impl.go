package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// PayrollRepository implements payroll data operations
type PayrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

// Create creates a new payroll record
func (r *PayrollRepository) Create(ctx context.Context, record *entities.PayrollRecord) error {
	m := &models.PayrollRecord{
		ID:           record.ID,
		EmployeeCode: record.EmployeeCode,
		PaymentDate:  record.PaymentDate,
		BaseSalary:   record.BaseSalary,
		Bonus:        record.Bonus,
		Deduction:    record.Deduction,
		NetSalary:    record.NetSalary,
		Remarks:      record.Remarks,
		CreatedAt:    record.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns every payroll record, newest payment first
func (r *PayrollRepository) List(ctx context.Context) ([]*entities.PayrollRecord, error) {
	var recordModels []models.PayrollRecord
	if err := r.db.WithContext(ctx).Order("payment_date DESC").Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*entities.PayrollRecord, 0, len(recordModels))
	for i := range recordModels {
		m := &recordModels[i]
		records = append(records, &entities.PayrollRecord{
			ID:           m.ID,
			EmployeeCode: m.EmployeeCode,
			PaymentDate:  m.PaymentDate,
			BaseSalary:   m.BaseSalary,
			Bonus:        m.Bonus,
			Deduction:    m.Deduction,
			NetSalary:    m.NetSalary,
			Remarks:      m.Remarks,
			CreatedAt:    m.CreatedAt,
		})
	}
	return records, nil
}
