package repository

import (
	"context"
	"errors"

	"gsale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// SearchFilters narrows a catalog search. Zero values mean "no filter".
type SearchFilters struct {
	Query    string          // Free-text match against name and description.
	Category entity.Category // Exact category match.
	Status   entity.Status   // Exact status match; listings default to available.
	SellerID uuid.UUID       // Restrict to a single seller.
	MinPrice string          // Inclusive lower price bound, decimal text.
	MaxPrice string          // Inclusive upper price bound, decimal text.
}

// Pagination selects a page of results.
type Pagination struct {
	Page     int // 1-based page number.
	PageSize int // Items per page.
}

// Offset converts the page number into a row offset.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.PageSize
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Search retrieves a page of products matching the filters, newest
	// first, together with the total match count.
	Search(ctx context.Context, filters SearchFilters, page Pagination) ([]*entity.Product, int64, error)

	// FindBySeller retrieves all products listed by a seller, newest first.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the storage.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViewCount bumps the view counter without rewriting the row.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
