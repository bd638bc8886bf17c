package models

import (
	"time"

	"github.com/google/uuid"
)

type SalesRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SalesNo       string    `gorm:"type:varchar(50);not null;index"`
	SalesDate     string    `gorm:"type:varchar(10)"`
	ClientCode    string    `gorm:"type:varchar(50);index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	Quantity      float64   `gorm:"type:decimal(18,4);default:0"`
	UnitPrice     float64   `gorm:"type:decimal(18,4);default:0"`
	Amount        float64   `gorm:"type:decimal(18,4);default:0"`
	Currency      string    `gorm:"type:varchar(10)"`
	PaymentStatus string    `gorm:"type:varchar(50);not null;default:'unpaid'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SalesRecord) TableName() string {
	return "sales"
}
