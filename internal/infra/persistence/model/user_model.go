package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	CPF           string    `gorm:"type:varchar(11);unique;not null;column:cpf"`
	Phone         string    `gorm:"type:varchar(11);not null"`
	Role          string    `gorm:"type:varchar(20);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	EmailVerified bool      `gorm:"not null;default:false"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
