package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel mirrors the 'sales' table. The price columns snapshot the
// product price at purchase time.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PriceAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceCurrency string          `gorm:"type:varchar(3);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	Notes         string          `gorm:"type:varchar(500)"`
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}
