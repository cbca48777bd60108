package postgres

import (
	"context"

	"gsale/internal/domain/entity"
	domainerrors "gsale/internal/domain/errors"
	"gsale/internal/domain/repository"
	"gsale/internal/domain/valueobject"
	"gsale/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM)
}

// Search retrieves a page of products matching the filters, newest first,
// together with the total match count. The count runs on the same filtered
// query so page numbers stay consistent with the returned rows.
func (repo *productRepository) Search(ctx context.Context, filters repository.SearchFilters, page repository.Pagination) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", string(filters.Category))
	}
	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.SellerID != uuid.Nil {
		query = query.Where("seller_id = ?", filters.SellerID)
	}
	if filters.MinPrice != "" {
		min, err := decimal.NewFromString(filters.MinPrice)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "invalid min price %q", filters.MinPrice)
		}
		query = query.Where("price_amount >= ?", min)
	}
	if filters.MaxPrice != "" {
		max, err := decimal.NewFromString(filters.MaxPrice)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "invalid max price %q", filters.MaxPrice)
		}
		query = query.Where("price_amount <= ?", max)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	return products, total, nil
}

// FindBySeller retrieves all products listed by a seller, newest first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by seller")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Create persists a new product entity to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("seller does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update modifies an existing product entity in the database.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	// Save rewrites every column, including nil reserved_by, so a released
	// reservation is actually cleared in the row.
	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product from the database.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementViewCount bumps the view counter atomically in SQL. Reading the
// row, bumping in memory and saving back would lose counts under
// concurrent scans.
func (repo *productRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	price, err := valueobject.NewMoney(data.PriceAmount, valueobject.Currency(data.PriceCurrency))
	if err != nil {
		return nil, errors.Wrapf(err, "stored price for product %s", data.ID)
	}

	product, err := entity.RestoreProduct(entity.RestoreProductParams{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          price,
		SellerID:       data.SellerID,
		Category:       entity.Category(data.Category),
		Quantity:       data.Quantity,
		Images:         data.Images,
		QRCodeData:     data.QRCodeData,
		QRCodeImageURL: data.QRCodeImageURL,
		Status:         entity.Status(data.Status),
		ReservedBy:     data.ReservedBy,
		ViewCount:      data.ViewCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "restore product %s", data.ID)
	}

	return product, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             data.ID(),
		SellerID:       data.SellerID(),
		Name:           data.Name(),
		Description:    data.Description(),
		PriceAmount:    data.Price().Amount(),
		PriceCurrency:  data.Price().Currency().String(),
		Category:       string(data.Category()),
		Quantity:       data.Quantity(),
		Images:         data.Images(),
		QRCodeData:     data.QRCodeData(),
		QRCodeImageURL: data.QRCodeImageURL(),
		Status:         string(data.Status()),
		ReservedBy:     data.ReservedBy(),
		ViewCount:      data.ViewCount(),
		CreatedAt:      data.CreatedAt(),
		UpdatedAt:      data.UpdatedAt(),
	}
}
