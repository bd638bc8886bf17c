package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ClientCode    string    `gorm:"type:varchar(50);not null;index"`
	ClientName    string    `gorm:"type:varchar(255);not null"`
	BusinessType  string    `gorm:"type:varchar(100)"`
	Country       string    `gorm:"type:varchar(100)"`
	ContactPerson string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Email         string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
