package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// PayrollFilter narrows the payroll list view. PaymentDate is a substring so
// "2025-01" matches a whole month.
type PayrollFilter struct {
	EmployeeCode string `form:"employeeCode"`
	PaymentDate  string `form:"paymentDate"`
}

// PayrollUsecase handles payroll entry and listing
type PayrollUsecase struct {
	repo repositories.PayrollRepository
}

// NewPayrollUsecase creates a new payroll usecase
func NewPayrollUsecase(repo repositories.PayrollRepository) *PayrollUsecase {
	return &PayrollUsecase{repo: repo}
}

// Create validates the form and inserts one payroll record. Net salary is
// derived here and never recomputed afterwards.
func (u *PayrollUsecase) Create(ctx context.Context, input *entities.CreatePayrollInput) (*entities.PayrollRecord, error) {
	var blank []string
	if input.EmployeeCode == "" {
		blank = append(blank, "employee_code")
	}
	if input.PaymentDate == "" {
		blank = append(blank, "payment_date")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	record := entities.NewPayrollRecord(input)
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List fetches every payroll record and applies the filter in memory
func (u *PayrollUsecase) List(ctx context.Context, filter *PayrollFilter) ([]*entities.PayrollRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	result := make([]*entities.PayrollRecord, 0, len(records))
	for _, r := range records {
		if !substringMatch(r.EmployeeCode, filter.EmployeeCode) {
			continue
		}
		if !substringMatch(r.PaymentDate, filter.PaymentDate) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ExportCSV renders the filtered payroll list as a spreadsheet
func (u *PayrollUsecase) ExportCSV(ctx context.Context, filter *PayrollFilter) ([]byte, error) {
	records, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.EmployeeCode, r.PaymentDate, formatInt(r.BaseSalary), formatInt(r.Bonus),
			formatInt(r.Deduction), formatInt(r.NetSalary), r.Remarks,
		})
	}
	return writeCSV([]string{
		"employee_code", "payment_date", "base_salary", "bonus",
		"deduction", "net_salary", "remarks",
	}, rows)
}
