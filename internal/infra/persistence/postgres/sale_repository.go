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
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// FindByID retrieves a single sale by its unique ID.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&saleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM)
}

// FindByBuyer retrieves all sales where the user is the buyer, newest first.
func (repo *saleRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Sale, error) {
	return repo.findAll(ctx, "buyer_id = ?", buyerID)
}

// FindBySeller retrieves all sales where the user is the seller, newest first.
func (repo *saleRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error) {
	return repo.findAll(ctx, "seller_id = ?", sellerID)
}

// FindPendingByProduct retrieves the open pending sale for a product, if any.
func (repo *saleRepository) FindPendingByProduct(ctx context.Context, productID uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, string(entity.SaleStatusPending)).
		First(&saleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending sale by product")
	}

	return toSaleDomain(&saleM)
}

// Create persists a new sale entity to the database.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("sale references a missing product or user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sale information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	return nil
}

// Update modifies an existing sale entity in the database.
func (repo *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Save(saleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update sale")
	}

	return nil
}

func (repo *saleRepository) findAll(ctx context.Context, cond string, arg any) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel
	err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&saleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sale, err := toSaleDomain(saleM)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) (*entity.Sale, error) {
	price, err := valueobject.NewMoney(data.PriceAmount, valueobject.Currency(data.PriceCurrency))
	if err != nil {
		return nil, errors.Wrapf(err, "stored price for sale %s", data.ID)
	}

	sale, err := entity.RestoreSale(entity.RestoreSaleParams{
		ID:          data.ID,
		ProductID:   data.ProductID,
		SellerID:    data.SellerID,
		BuyerID:     data.BuyerID,
		Price:       price,
		Status:      entity.SaleStatus(data.Status),
		Notes:       data.Notes,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "restore sale %s", data.ID)
	}

	return sale, nil
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	return &model.SaleModel{
		ID:            data.ID(),
		ProductID:     data.ProductID(),
		SellerID:      data.SellerID(),
		BuyerID:       data.BuyerID(),
		PriceAmount:   data.Price().Amount(),
		PriceCurrency: data.Price().Currency().String(),
		Status:        string(data.Status()),
		Notes:         data.Notes(),
		CompletedAt:   data.CompletedAt(),
		CreatedAt:     data.CreatedAt(),
		UpdatedAt:     data.UpdatedAt(),
	}
}
