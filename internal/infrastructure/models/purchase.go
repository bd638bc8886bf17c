package models

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PurchaseNo    string    `gorm:"type:varchar(50);not null;index"`
	PurchaseDate  string    `gorm:"type:varchar(10)"`
	SupplierCode  string    `gorm:"type:varchar(50);index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	Quantity      float64   `gorm:"type:decimal(18,4);default:0"`
	UnitPrice     float64   `gorm:"type:decimal(18,4);default:0"`
	Amount        float64   `gorm:"type:decimal(18,4);default:0"`
	Currency      string    `gorm:"type:varchar(10)"`
	PaymentStatus string    `gorm:"type:varchar(50);not null;default:'unpaid'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PurchaseRecord) TableName() string {
	return "purchases"
}
