// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"gsale/internal/domain/entity"

	"github.com/google/uuid"
)

// The aggregates keep their fields unexported, so the delivery layer maps
// them into plain response structs instead of marshaling entities directly.

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	CPF           string     `json:"cpf"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID(),
		Name:          user.Name(),
		Email:         user.Email().String(),
		CPF:           user.CPF().Formatted(),
		Phone:         user.Phone().Formatted(),
		Role:          string(user.Role()),
		IsActive:      user.IsActive(),
		EmailVerified: user.EmailVerified(),
		LastLoginAt:   user.LastLoginAt(),
		CreatedAt:     user.CreatedAt(),
		UpdatedAt:     user.UpdatedAt(),
	}
}

// PriceResponse carries a monetary amount in machine and display form.
type PriceResponse struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// ProductResponse is the public representation of a catalog listing.
type ProductResponse struct {
	ID             uuid.UUID     `json:"id"`
	SellerID       uuid.UUID     `json:"seller_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Price          PriceResponse `json:"price"`
	Category       string        `json:"category"`
	Quantity       int           `json:"quantity"`
	Images         []string      `json:"images"`
	Status         string        `json:"status"`
	ReservedBy     *uuid.UUID    `json:"reserved_by,omitempty"`
	ViewCount      int           `json:"view_count"`
	QRCodeImageURL string        `json:"qr_code_image_url,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func toProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	return &ProductResponse{
		ID:       product.ID(),
		SellerID: product.SellerID(),
		Name:     product.Name(),
		Price: PriceResponse{
			Amount:    product.Price().Amount().StringFixed(2),
			Currency:  product.Price().Currency().String(),
			Formatted: product.Price().Formatted(),
		},
		Description:    product.Description(),
		Category:       string(product.Category()),
		Quantity:       product.Quantity(),
		Images:         product.Images(),
		Status:         string(product.Status()),
		ReservedBy:     product.ReservedBy(),
		ViewCount:      product.ViewCount(),
		QRCodeImageURL: product.QRCodeImageURL(),
		CreatedAt:      product.CreatedAt(),
		UpdatedAt:      product.UpdatedAt(),
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

// SaleResponse is the public representation of a sale record.
type SaleResponse struct {
	ID          uuid.UUID     `json:"id"`
	ProductID   uuid.UUID     `json:"product_id"`
	SellerID    uuid.UUID     `json:"seller_id"`
	BuyerID     uuid.UUID     `json:"buyer_id"`
	Price       PriceResponse `json:"price"`
	Status      string        `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func toSaleResponse(sale *entity.Sale) *SaleResponse {
	if sale == nil {
		return nil
	}

	return &SaleResponse{
		ID:        sale.ID(),
		ProductID: sale.ProductID(),
		SellerID:  sale.SellerID(),
		BuyerID:   sale.BuyerID(),
		Price: PriceResponse{
			Amount:    sale.Price().Amount().StringFixed(2),
			Currency:  sale.Price().Currency().String(),
			Formatted: sale.Price().Formatted(),
		},
		Status:      string(sale.Status()),
		Notes:       sale.Notes(),
		CompletedAt: sale.CompletedAt(),
		CreatedAt:   sale.CreatedAt(),
		UpdatedAt:   sale.UpdatedAt(),
	}
}

func toSaleResponses(sales []*entity.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, toSaleResponse(sale))
	}

	return out
}
