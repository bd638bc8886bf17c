package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                  string    `gorm:"type:varchar(100);not null"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	Role                  string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status                string    `gorm:"type:varchar(50);not null;default:'pending'"`
	EmailVerified         bool      `gorm:"not null;default:false"`
	VerificationCode      string    `gorm:"type:varchar(10)"`
	VerificationExpiresAt *time.Time
	VerificationAttempts  int `gorm:"not null;default:0"`
	ApprovedAt            *time.Time
	LastLogin             *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
