package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EmployeeCode string    `gorm:"type:varchar(50);not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Department   string    `gorm:"type:varchar(100)"`
	Position     string    `gorm:"type:varchar(100)"`
	HireDate     string    `gorm:"type:varchar(10)"`
	Salary       int64     `gorm:"type:bigint;default:0"`
	Phone        string    `gorm:"type:varchar(50)"`
	Email        string    `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
