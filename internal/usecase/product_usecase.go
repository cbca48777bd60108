package usecase

import (
	"context"

	"gsale/internal/domain/entity"
	"gsale/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       string
	Currency    string
	Category    string
	Quantity    int
	Images      []string
}

// UpdateProductInput defines the updatable product fields. Nil fields keep
// their current value.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *string
	Category    *string
	Quantity    *int
	Images      *[]string
}

// SearchProductsInput narrows and pages a catalog search.
type SearchProductsInput struct {
	Query    string
	Category string
	MinPrice string
	MaxPrice string
	Page     int
	PageSize int
}

// ApplyDiscountInput carries the discount percentage as decimal text.
type ApplyDiscountInput struct {
	Percentage string
}

// --- Output DTOs ---

// ProductPage is one page of search results.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	Page     int
	PageSize int
}

// ProductQROutput returns the generated QR code and where it is stored.
type ProductQROutput struct {
	Data     string
	ImageURL string
	PNG      []byte
}

// ScanOutput resolves a scanned code to the product and the seller to
// contact about it.
type ScanOutput struct {
	Product *entity.Product
	Seller  *entity.User
}

// ProductUsecase defines the interface for catalog and trading operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	SearchProducts(ctx context.Context, input SearchProductsInput) (*ProductPage, error)
	ListMyProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	ActivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	ApplyDiscount(ctx context.Context, sellerID, productID uuid.UUID, input ApplyDiscountInput) (*entity.Product, error)

	ReserveProduct(ctx context.Context, buyerID, productID uuid.UUID) error
	ReleaseReservation(ctx context.Context, userID, productID uuid.UUID) error
	PurchaseProduct(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Sale, error)

	GenerateProductQR(ctx context.Context, sellerID, productID uuid.UUID) (*ProductQROutput, error)
	ScanProductQR(ctx context.Context, qrData string) (*ScanOutput, error)
}

// DefaultPageSize bounds unpaged catalog queries.
const DefaultPageSize = 20

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// NormalizePage clamps raw paging input into repository pagination.
func NormalizePage(page, pageSize int) repository.Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return repository.Pagination{Page: page, PageSize: pageSize}
}
