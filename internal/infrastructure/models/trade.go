package models

import (
	"time"

	"github.com/google/uuid"
)

type TradeTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TransactionNo   string    `gorm:"type:varchar(50);not null;index"`
	TransactionType string    `gorm:"type:varchar(20);not null;default:'export'"`
	TransactionDate string    `gorm:"type:varchar(10)"`
	ClientCode      string    `gorm:"type:varchar(50);index"`
	ProductName     string    `gorm:"type:varchar(255);not null"`
	Quantity        float64   `gorm:"type:decimal(18,4);default:0"`
	UnitPrice       float64   `gorm:"type:decimal(18,4);default:0"`
	Amount          float64   `gorm:"type:decimal(18,4);default:0"`
	Currency        string    `gorm:"type:varchar(10)"`
	ExchangeRate    float64   `gorm:"type:decimal(18,6);default:0"`
	KRWAmount       float64   `gorm:"type:decimal(18,2);default:0"`
	CustomsStatus   string    `gorm:"type:varchar(50);not null;default:'pending'"`
	BLNo            string    `gorm:"type:varchar(100)"`
	Remarks         string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
