package usecase

import (
	"context"

	"gsale/internal/domain/entity"

	"github.com/google/uuid"
)

// RefundSaleInput carries the optional reason recorded on the sale.
type RefundSaleInput struct {
	Reason string
}

// SaleUsecase defines the interface for sale history and settlement operations.
type SaleUsecase interface {
	// ListPurchases returns the sales where the user is the buyer.
	ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Sale, error)

	// ListSales returns the sales where the user is the seller.
	ListSales(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error)

	// RefundSale reverses a completed sale. The product stays sold; the
	// refund is a settlement record only. Only the seller may refund.
	RefundSale(ctx context.Context, sellerID, saleID uuid.UUID, input RefundSaleInput) (*entity.Sale, error)
}
