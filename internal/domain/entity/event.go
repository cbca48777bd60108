package entity

import (
	"github.com/google/uuid"
)

// DomainEvent is a record of a state change appended to an aggregate's
// outbox for later asynchronous consumption. The set of events is closed:
// each transition has its own struct carrying only the fields relevant to
// that transition.
type DomainEvent interface {
	// EventType returns the stable name used for routing and logging.
	EventType() string
}

// ProductCreated is recorded when a product enters the catalog.
type ProductCreated struct {
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

func (ProductCreated) EventType() string { return "ProductCreated" }

// ProductUpdated is recorded when product details change.
type ProductUpdated struct {
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

func (ProductUpdated) EventType() string { return "ProductUpdated" }

// ProductReserved is recorded when a buyer reserves a product.
type ProductReserved struct {
	ProductID uuid.UUID `json:"product_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
}

func (ProductReserved) EventType() string { return "ProductReserved" }

// ReservationReleased is recorded when a reservation is dropped.
type ReservationReleased struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (ReservationReleased) EventType() string { return "ReservationReleased" }

// ProductSold is recorded when a product is sold to a buyer.
type ProductSold struct {
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Price     string    `json:"price"`
}

func (ProductSold) EventType() string { return "ProductSold" }

// ProductDeactivated is recorded when a product is withdrawn from the catalog.
type ProductDeactivated struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (ProductDeactivated) EventType() string { return "ProductDeactivated" }

// ProductActivated is recorded when a product returns to the catalog.
type ProductActivated struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (ProductActivated) EventType() string { return "ProductActivated" }

// DiscountApplied is recorded when the price is reduced by a percentage.
type DiscountApplied struct {
	ProductID  uuid.UUID `json:"product_id"`
	Percentage string    `json:"percentage"`
	NewPrice   string    `json:"new_price"`
}

func (DiscountApplied) EventType() string { return "DiscountApplied" }

// QRCodeAssigned is recorded when a sharing QR code is attached to a product.
type QRCodeAssigned struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (QRCodeAssigned) EventType() string { return "QRCodeAssigned" }

// SaleCompleted is recorded when buyer and seller settle a sale.
type SaleCompleted struct {
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Price     string    `json:"price"`
}

func (SaleCompleted) EventType() string { return "SaleCompleted" }

// SaleCancelled is recorded when a pending sale is abandoned.
type SaleCancelled struct {
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
}

func (SaleCancelled) EventType() string { return "SaleCancelled" }

// SaleRefunded is recorded when a completed sale is reversed.
type SaleRefunded struct {
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
}

func (SaleRefunded) EventType() string { return "SaleRefunded" }

// PasswordChanged is recorded when a user's password hash is replaced.
type PasswordChanged struct {
	UserID uuid.UUID `json:"user_id"`
}

func (PasswordChanged) EventType() string { return "PasswordChanged" }

// UserActivated is recorded when a user account is enabled.
type UserActivated struct {
	UserID uuid.UUID `json:"user_id"`
}

func (UserActivated) EventType() string { return "UserActivated" }

// UserDeactivated is recorded when a user account is disabled.
type UserDeactivated struct {
	UserID uuid.UUID `json:"user_id"`
}

func (UserDeactivated) EventType() string { return "UserDeactivated" }

// EmailVerified is recorded when a user's email address is confirmed.
type EmailVerified struct {
	UserID uuid.UUID `json:"user_id"`
}

func (EmailVerified) EventType() string { return "EmailVerified" }

// UserPromotedToSeller is recorded when a buyer gains the seller role.
type UserPromotedToSeller struct {
	UserID uuid.UUID `json:"user_id"`
}

func (UserPromotedToSeller) EventType() string { return "UserPromotedToSeller" }
