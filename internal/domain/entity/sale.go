package entity

import (
	"time"

	"gsale/internal/domain/valueobject"
	"gsale/internal/errors"

	"github.com/google/uuid"
)

// SaleStatus is the lifecycle state of a sale record.
type SaleStatus string

const (
	// SaleStatusPending means the sale was opened but not yet settled.
	SaleStatusPending SaleStatus = "pending"
	// SaleStatusCompleted means buyer and seller settled the sale.
	SaleStatusCompleted SaleStatus = "completed"
	// SaleStatusCancelled means the sale was abandoned before settlement.
	SaleStatusCancelled SaleStatus = "cancelled"
	// SaleStatusRefunded means a completed sale was reversed.
	SaleStatusRefunded SaleStatus = "refunded"
)

// String returns the string representation of the SaleStatus.
func (s SaleStatus) String() string {
	return string(s)
}

// IsValid checks if the SaleStatus is a recognized value.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled, SaleStatusRefunded:
		return true
	default:
		return false
	}
}

// Sale records a purchase of a product by a buyer. The price is snapshotted
// at purchase time so later discounts on the product do not rewrite history.
type Sale struct {
	Base

	productID   uuid.UUID
	sellerID    uuid.UUID
	buyerID     uuid.UUID
	price       valueobject.Money
	status      SaleStatus
	notes       string
	completedAt *time.Time
}

const maxSaleNotesLength = 500

// NewSale opens a pending sale for a product.
func NewSale(productID, sellerID, buyerID uuid.UUID, price valueobject.Money) (*Sale, error) {
	sale := &Sale{
		Base:      newBase(),
		productID: productID,
		sellerID:  sellerID,
		buyerID:   buyerID,
		price:     price,
		status:    SaleStatusPending,
	}

	if err := sale.validate(); err != nil {
		return nil, err
	}

	return sale, nil
}

// RestoreSaleParams carries a persisted snapshot back into the domain.
type RestoreSaleParams struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	SellerID    uuid.UUID
	BuyerID     uuid.UUID
	Price       valueobject.Money
	Status      SaleStatus
	Notes       string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreSale rebuilds a sale from persistence, re-validating the snapshot.
func RestoreSale(params RestoreSaleParams) (*Sale, error) {
	sale := &Sale{
		Base:        restoreBase(params.ID, params.CreatedAt, params.UpdatedAt),
		productID:   params.ProductID,
		sellerID:    params.SellerID,
		buyerID:     params.BuyerID,
		price:       params.Price,
		status:      params.Status,
		notes:       params.Notes,
		completedAt: params.CompletedAt,
	}

	if err := sale.validate(); err != nil {
		return nil, err
	}

	return sale, nil
}

// --- Accessors ---

func (s *Sale) ProductID() uuid.UUID     { return s.productID }
func (s *Sale) SellerID() uuid.UUID      { return s.sellerID }
func (s *Sale) BuyerID() uuid.UUID       { return s.buyerID }
func (s *Sale) Price() valueobject.Money { return s.price }
func (s *Sale) Status() SaleStatus       { return s.status }
func (s *Sale) Notes() string            { return s.notes }

// CompletedAt returns the settlement time, or nil while pending.
func (s *Sale) CompletedAt() *time.Time {
	if s.completedAt == nil {
		return nil
	}
	at := *s.completedAt

	return &at
}

// --- Operations ---

// Complete settles a pending sale.
func (s *Sale) Complete() error {
	if s.status != SaleStatusPending {
		return errors.Wrapf(ErrInvalidTransition, "cannot complete a sale with status %q", s.status)
	}

	now := time.Now().UTC()
	s.status = SaleStatusCompleted
	s.completedAt = &now
	s.touch()
	s.record(SaleCompleted{
		SaleID:    s.ID(),
		ProductID: s.productID,
		BuyerID:   s.buyerID,
		Price:     s.price.Amount().StringFixed(2),
	})

	return nil
}

// Cancel abandons a pending sale.
func (s *Sale) Cancel() error {
	if s.status != SaleStatusPending {
		return errors.Wrapf(ErrInvalidTransition, "cannot cancel a sale with status %q", s.status)
	}

	s.status = SaleStatusCancelled
	s.touch()
	s.record(SaleCancelled{SaleID: s.ID(), ProductID: s.productID})

	return nil
}

// AddNote attaches free-text bookkeeping to the sale record.
func (s *Sale) AddNote(note string) error {
	if len(note) > maxSaleNotesLength {
		return newValidationError("notes", "must be at most 500 characters")
	}

	s.notes = note
	s.touch()

	return nil
}

// Refund reverses a completed sale. The reason, if given, is kept as a note.
func (s *Sale) Refund(reason string) error {
	if s.status != SaleStatusCompleted {
		return errors.Wrapf(ErrInvalidTransition, "cannot refund a sale with status %q", s.status)
	}
	if len(reason) > maxSaleNotesLength {
		return newValidationError("notes", "must be at most 500 characters")
	}

	if reason != "" {
		s.notes = reason
	}
	s.status = SaleStatusRefunded
	s.touch()
	s.record(SaleRefunded{SaleID: s.ID(), ProductID: s.productID, BuyerID: s.buyerID})

	return nil
}

func (s *Sale) validate() error {
	if s.productID == uuid.Nil {
		return newValidationError("product_id", "is required")
	}
	if s.sellerID == uuid.Nil {
		return newValidationError("seller_id", "is required")
	}
	if s.buyerID == uuid.Nil {
		return newValidationError("buyer_id", "is required")
	}
	if s.sellerID == s.buyerID {
		return newValidationError("buyer_id", "buyer and seller cannot be the same user")
	}
	if !s.price.IsPositive() {
		return newValidationError("price", "must be greater than zero")
	}
	if !s.status.IsValid() {
		return newValidationError("status", "is not a recognized status")
	}
	if len(s.notes) > maxSaleNotesLength {
		return newValidationError("notes", "must be at most 500 characters")
	}

	return nil
}
