package entity

import (
	"strings"
	"time"

	"gsale/internal/domain/valueobject"
	"gsale/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a product.
type Status string

const (
	// StatusAvailable means the product can be reserved or bought.
	StatusAvailable Status = "available"
	// StatusReserved means a buyer holds a reservation on the product.
	StatusReserved Status = "reserved"
	// StatusSold means the product was bought. Sold products are frozen.
	StatusSold Status = "sold"
	// StatusInactive means the product is withdrawn from the catalog.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a recognized value.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusInactive:
		return true
	default:
		return false
	}
}

// Category classifies a product in the catalog.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryBooks       Category = "books"
	CategoryToys        Category = "toys"
	CategoryClothing    Category = "clothing"
	CategorySports      Category = "sports"
	CategoryTools       Category = "tools"
	CategoryOther       Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a recognized value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryBooks, CategoryToys,
		CategoryClothing, CategorySports, CategoryTools, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory maps a raw string onto a Category, falling back to
// CategoryOther for unknown values.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return CategoryOther
	}

	return c
}

const (
	productNameMin        = 3
	productNameMax        = 200
	productDescriptionMin = 10
	productDescriptionMax = 2000
	productMaxImages      = 5
)

// Product is the aggregate root of the catalog. It owns its price and image
// list; sellerID and reservedBy are non-owning references validated for
// presence only. All mutation goes through the named operations below, each
// of which either fully applies (state + timestamp + event) or leaves the
// product untouched.
type Product struct {
	Base

	name           string
	description    string
	price          valueobject.Money
	sellerID       uuid.UUID
	category       Category
	quantity       int
	images         []string
	qrCodeData     string
	qrCodeImageURL string
	status         Status
	reservedBy     *uuid.UUID
	viewCount      int
}

// NewProductParams carries the constructor arguments for a fresh product.
type NewProductParams struct {
	Name        string
	Description string
	Price       valueobject.Money
	SellerID    uuid.UUID
	Category    Category
	Quantity    int
	Images      []string
}

// NewProduct creates a product in the AVAILABLE state. An empty category
// defaults to CategoryOther. The constructor validates fully; no
// partially-valid instance is observable.
func NewProduct(params NewProductParams) (*Product, error) {
	category := params.Category
	if category == "" {
		category = CategoryOther
	}

	product := &Product{
		Base:        newBase(),
		name:        params.Name,
		description: params.Description,
		price:       params.Price,
		sellerID:    params.SellerID,
		category:    category,
		quantity:    params.Quantity,
		images:      cloneImages(params.Images),
		status:      StatusAvailable,
	}

	if err := product.validate(); err != nil {
		return nil, err
	}

	product.record(ProductCreated{ProductID: product.ID(), SellerID: product.sellerID})

	return product, nil
}

// RestoreProductParams carries a persisted snapshot back into the domain.
type RestoreProductParams struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          valueobject.Money
	SellerID       uuid.UUID
	Category       Category
	Quantity       int
	Images         []string
	QRCodeData     string
	QRCodeImageURL string
	Status         Status
	ReservedBy     *uuid.UUID
	ViewCount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreProduct rebuilds a product from persistence. The snapshot is
// re-validated: raw stored data gets no trust the constructor would not
// extend to fresh input.
func RestoreProduct(params RestoreProductParams) (*Product, error) {
	product := &Product{
		Base:           restoreBase(params.ID, params.CreatedAt, params.UpdatedAt),
		name:           params.Name,
		description:    params.Description,
		price:          params.Price,
		sellerID:       params.SellerID,
		category:       params.Category,
		quantity:       params.Quantity,
		images:         cloneImages(params.Images),
		qrCodeData:     params.QRCodeData,
		qrCodeImageURL: params.QRCodeImageURL,
		status:         params.Status,
		reservedBy:     params.ReservedBy,
		viewCount:      params.ViewCount,
	}

	if err := product.validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// --- Accessors ---

func (p *Product) Name() string                 { return p.name }
func (p *Product) Description() string          { return p.description }
func (p *Product) Price() valueobject.Money     { return p.price }
func (p *Product) SellerID() uuid.UUID          { return p.sellerID }
func (p *Product) Category() Category           { return p.category }
func (p *Product) Quantity() int                { return p.quantity }
func (p *Product) QRCodeData() string           { return p.qrCodeData }
func (p *Product) QRCodeImageURL() string       { return p.qrCodeImageURL }
func (p *Product) Status() Status               { return p.status }
func (p *Product) ViewCount() int               { return p.viewCount }

// Images returns a copy of the ordered image URL list.
func (p *Product) Images() []string {
	return cloneImages(p.images)
}

// ReservedBy returns the reserving buyer while the product is RESERVED.
func (p *Product) ReservedBy() *uuid.UUID {
	if p.reservedBy == nil {
		return nil
	}
	id := *p.reservedBy

	return &id
}

// IsAvailable reports whether the product can be reserved or bought.
func (p *Product) IsAvailable() bool {
	return p.status == StatusAvailable
}

// --- Operations ---

// UpdateDetailsInput lists the updatable product fields. Nil fields are
// left unchanged.
type UpdateDetailsInput struct {
	Name        *string
	Description *string
	Price       *valueobject.Money
	Category    *Category
	Quantity    *int
	Images      *[]string
}

// UpdateDetails mutates the product's descriptive fields. Sold products are
// frozen.
func (p *Product) UpdateDetails(input UpdateDetailsInput) error {
	if p.status == StatusSold {
		return errors.Wrap(ErrInvalidTransition, "cannot update a sold product")
	}

	next := *p
	if input.Name != nil {
		next.name = *input.Name
	}
	if input.Description != nil {
		next.description = *input.Description
	}
	if input.Price != nil {
		next.price = *input.Price
	}
	if input.Category != nil {
		next.category = *input.Category
	}
	if input.Quantity != nil {
		next.quantity = *input.Quantity
	}
	if input.Images != nil {
		next.images = cloneImages(*input.Images)
	}

	if err := next.validate(); err != nil {
		return err
	}

	*p = next
	p.touch()
	p.record(ProductUpdated{ProductID: p.ID(), SellerID: p.sellerID})

	return nil
}

// Reserve places a hold on the product for a buyer.
func (p *Product) Reserve(buyerID uuid.UUID) error {
	if p.status != StatusAvailable {
		return errors.Wrapf(ErrInvalidTransition, "cannot reserve a product with status %q", p.status)
	}

	p.status = StatusReserved
	p.reservedBy = &buyerID
	p.touch()
	p.record(ProductReserved{ProductID: p.ID(), BuyerID: buyerID})

	return nil
}

// ReleaseReservation drops an existing hold.
func (p *Product) ReleaseReservation() error {
	if p.status != StatusReserved {
		return errors.Wrap(ErrInvalidTransition, "product is not reserved")
	}

	p.status = StatusAvailable
	p.reservedBy = nil
	p.touch()
	p.record(ReservationReleased{ProductID: p.ID()})

	return nil
}

// MarkAsSold finishes the lifecycle. Allowed from AVAILABLE or RESERVED.
func (p *Product) MarkAsSold(buyerID uuid.UUID) error {
	switch p.status {
	case StatusSold:
		return errors.Wrap(ErrInvalidTransition, "product is already sold")
	case StatusInactive:
		return errors.Wrap(ErrInvalidTransition, "cannot sell an inactive product")
	case StatusAvailable, StatusReserved:
	default:
		return errors.Wrapf(ErrInvalidTransition, "unknown status %q", p.status)
	}

	p.status = StatusSold
	p.reservedBy = nil
	p.touch()
	p.record(ProductSold{
		ProductID: p.ID(),
		SellerID:  p.sellerID,
		BuyerID:   buyerID,
		Price:     p.price.Amount().StringFixed(2),
	})

	return nil
}

// Deactivate withdraws the product from the catalog. Sold products stay sold.
func (p *Product) Deactivate() error {
	if p.status == StatusSold {
		return errors.Wrap(ErrInvalidTransition, "cannot deactivate a sold product")
	}

	p.status = StatusInactive
	p.reservedBy = nil
	p.touch()
	p.record(ProductDeactivated{ProductID: p.ID()})

	return nil
}

// Activate returns the product to the catalog in the AVAILABLE state.
func (p *Product) Activate() error {
	if p.status == StatusSold {
		return errors.Wrap(ErrInvalidTransition, "cannot activate a sold product")
	}

	p.status = StatusAvailable
	p.reservedBy = nil
	p.touch()
	p.record(ProductActivated{ProductID: p.ID()})

	return nil
}

// ApplyDiscount reduces the price by a percentage in [0,100].
func (p *Product) ApplyDiscount(percentage decimal.Decimal) error {
	if p.status == StatusSold {
		return errors.Wrap(ErrInvalidTransition, "cannot apply discount to a sold product")
	}

	// A 100% discount legitimately zeroes the price, so the positive-price
	// rule from validate does not apply here. Money bounds the percentage.
	discounted, err := p.price.ApplyDiscount(percentage)
	if err != nil {
		return err
	}

	p.price = discounted
	p.touch()
	p.record(DiscountApplied{
		ProductID:  p.ID(),
		Percentage: percentage.String(),
		NewPrice:   discounted.Amount().StringFixed(2),
	})

	return nil
}

// SetQRCode attaches the sharing QR payload and its rendered image URL.
func (p *Product) SetQRCode(data, imageURL string) error {
	if data == "" || imageURL == "" {
		return errors.Wrap(ErrMissingArgument, "qr code data and image url are required")
	}

	p.qrCodeData = data
	p.qrCodeImageURL = imageURL
	p.touch()
	p.record(QRCodeAssigned{ProductID: p.ID()})

	return nil
}

// IncrementViewCount bumps the monotonic view counter. It never fails and
// intentionally does not count as a content mutation: no timestamp bump,
// no event.
func (p *Product) IncrementViewCount() {
	p.viewCount++
}

// validate checks the whole entity. It runs on construction, on restore
// and before committing any mutating operation.
func (p *Product) validate() error {
	name := strings.TrimSpace(p.name)
	if len(name) < productNameMin {
		return newValidationError("name", "must be at least 3 characters long")
	}
	if len(p.name) > productNameMax {
		return newValidationError("name", "cannot exceed 200 characters")
	}

	description := strings.TrimSpace(p.description)
	if len(description) < productDescriptionMin {
		return newValidationError("description", "must be at least 10 characters long")
	}
	if len(p.description) > productDescriptionMax {
		return newValidationError("description", "cannot exceed 2000 characters")
	}

	if !p.price.IsPositive() {
		return newValidationError("price", "must be greater than zero")
	}

	if p.sellerID == uuid.Nil {
		return newValidationError("seller_id", "is required")
	}

	if p.quantity < 0 {
		return newValidationError("quantity", "cannot be negative")
	}

	if len(p.images) > productMaxImages {
		return newValidationError("images", "cannot exceed 5 entries")
	}
	for _, url := range p.images {
		if strings.TrimSpace(url) == "" {
			return newValidationError("images", "entries cannot be empty")
		}
	}

	if !p.category.IsValid() {
		return newValidationError("category", "is not a recognized category")
	}
	if !p.status.IsValid() {
		return newValidationError("status", "is not a recognized status")
	}

	if p.reservedBy != nil && p.status != StatusReserved {
		return newValidationError("reserved_by", "is only allowed while reserved")
	}

	return nil
}

func cloneImages(images []string) []string {
	if len(images) == 0 {
		return nil
	}
	out := make([]string, len(images))
	copy(out, images)

	return out
}
