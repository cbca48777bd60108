package repository

import (
	"context"
	"errors"

	"gsale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSaleNotFound is a domain-specific error returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the standard operations for sale persistence.
type SaleRepository interface {
	// FindByID retrieves a single sale by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindByBuyer retrieves all sales where the user is the buyer, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Sale, error)

	// FindBySeller retrieves all sales where the user is the seller, newest first.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error)

	// FindPendingByProduct retrieves the open pending sale for a product,
	// if any. A product has at most one pending sale at a time.
	FindPendingByProduct(ctx context.Context, productID uuid.UUID) (*entity.Sale, error)

	// Create persists a new sale entity to the storage.
	Create(ctx context.Context, sale *entity.Sale) error

	// Update modifies an existing sale entity in the storage.
	Update(ctx context.Context, sale *entity.Sale) error
}
