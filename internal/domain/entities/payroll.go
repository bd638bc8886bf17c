package entities

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRecord represents one salary payment. EmployeeCode is a soft FK:
// it refers to Employee.EmployeeCode by convention and is not checked on
// write. NetSalary is computed once at entry time and never recomputed.
type PayrollRecord struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employeeCode"`
	PaymentDate  string    `json:"paymentDate"`
	BaseSalary   int64     `json:"baseSalary"`
	Bonus        int64     `json:"bonus"`
	Deduction    int64     `json:"deduction"`
	NetSalary    int64     `json:"netSalary"`
	Remarks      string    `json:"remarks"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreatePayrollInput represents the payroll entry form
type CreatePayrollInput struct {
	EmployeeCode string `json:"employeeCode"`
	PaymentDate  string `json:"paymentDate"`
	BaseSalary   int64  `json:"baseSalary"`
	Bonus        int64  `json:"bonus"`
	Deduction    int64  `json:"deduction"`
	Remarks      string `json:"remarks"`
}

// NewPayrollRecord builds a PayrollRecord with net salary derived from the
// form values: base + bonus - deduction.
func NewPayrollRecord(in *CreatePayrollInput) *PayrollRecord {
	return &PayrollRecord{
		ID:           uuid.New(),
		EmployeeCode: in.EmployeeCode,
		PaymentDate:  in.PaymentDate,
		BaseSalary:   in.BaseSalary,
		Bonus:        in.Bonus,
		Deduction:    in.Deduction,
		NetSalary:    in.BaseSalary + in.Bonus - in.Deduction,
		Remarks:      in.Remarks,
		CreatedAt:    time.Now(),
	}
}
