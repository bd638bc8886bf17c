package models

import (
	"time"

	"github.com/google/uuid"
)

type PayrollRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EmployeeCode string    `gorm:"type:varchar(50);not null;index"`
	PaymentDate  string    `gorm:"type:varchar(10);not null"`
	BaseSalary   int64     `gorm:"type:bigint;default:0"`
	Bonus        int64     `gorm:"type:bigint;default:0"`
	Deduction    int64     `gorm:"type:bigint;default:0"`
	NetSalary    int64     `gorm:"type:bigint;default:0"`
	Remarks      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PayrollRecord) TableName() string {
	return "payroll"
}
