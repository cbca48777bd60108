package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. The price is split into a
// numeric amount and an ISO currency code so the database can range-filter
// without parsing formatted strings.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(200);not null"`
	Description    string          `gorm:"type:text;not null"`
	PriceAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceCurrency  string          `gorm:"type:varchar(3);not null"`
	Category       string          `gorm:"type:varchar(30);not null;index"`
	Quantity       int             `gorm:"not null;default:1"`
	Images         []string        `gorm:"type:jsonb;serializer:json"`
	QRCodeData     string          `gorm:"type:text;column:qr_code_data"`
	QRCodeImageURL string          `gorm:"type:text;column:qr_code_image_url"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	ReservedBy     *uuid.UUID      `gorm:"type:uuid"`
	ViewCount      int             `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
