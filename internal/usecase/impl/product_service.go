package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "gsale/internal/delivery/context"
	"gsale/internal/domain/entity"
	domainerrors "gsale/internal/domain/errors"
	"gsale/internal/domain/repository"
	"gsale/internal/domain/service"
	"gsale/internal/domain/valueobject"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	qrService   service.QRCodeService
	fileStorage service.FileStorage
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	QRService   service.QRCodeService
	FileStorage service.FileStorage
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		qrService:   params.QRService,
		fileStorage: params.FileStorage,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product for an active seller.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("sellerID", sellerID), slog.String("name", input.Name))

	price, err := parsePrice(input.Price, input.Currency)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var created *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()

		seller, err := userRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "create product")
			}

			return errors.Wrap(err, "failed to find seller")
		}

		if !seller.CanSell() {
			return errors.Wrap(domainerrors.ErrSellerRequired, "create product")
		}

		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}

		product, err := entity.NewProduct(entity.NewProductParams{
			Name:        input.Name,
			Description: input.Description,
			Price:       price,
			SellerID:    sellerID,
			Category:    entity.ParseCategory(input.Category),
			Quantity:    quantity,
			Images:      input.Images,
		})
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		created = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), created)
	srv.log(ctx).Debug("Product created", slog.Any("productID", created.ID()))

	return created, nil
}

// GetProduct loads a product and counts the view.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// View counting is fire-and-forget; a failed bump never hides the product.
	if err := srv.productRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to increment view count", slog.Any("productID", id), slog.Any("error", err))
	} else {
		product.IncrementViewCount()
	}

	return product, nil
}

// SearchProducts pages through the catalog. Only available products are listed.
func (srv *productService) SearchProducts(ctx context.Context, input usecase.SearchProductsInput) (*usecase.ProductPage, error) {
	page := usecase.NormalizePage(input.Page, input.PageSize)

	filters := repository.SearchFilters{
		Query:    input.Query,
		Status:   entity.StatusAvailable,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}
	if input.Category != "" {
		filters.Category = entity.ParseCategory(input.Category)
	}

	products, total, err := srv.productRepo.Search(ctx, filters, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// ListMyProducts returns every product listed by the seller, any status.
func (srv *productService) ListMyProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// UpdateProduct changes a product's descriptive fields. Only the owner may update.
func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", productID))

	details := entity.UpdateDetailsInput{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Images:      input.Images,
	}
	if input.Category != nil {
		category := entity.ParseCategory(*input.Category)
		details.Category = &category
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := srv.findOwnedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		if input.Price != nil {
			price, err := parsePrice(*input.Price, product.Price().Currency().String())
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails(err.Error())
			}
			details.Price = &price
		}

		if err := product.UpdateDetails(details); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), updated)

	return updated, nil
}

// DeactivateProduct withdraws a product from the catalog.
func (srv *productService) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	return srv.transition(ctx, sellerID, productID, "deactivate", (*entity.Product).Deactivate)
}

// ActivateProduct returns a product to the catalog.
func (srv *productService) ActivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	return srv.transition(ctx, sellerID, productID, "activate", (*entity.Product).Activate)
}

// DeleteProduct removes a listing. The product is deactivated first so the
// sold-state guard applies, then soft-deleted from the catalog. Deleting a
// reserved product abandons the pending sale its reservation opened.
func (srv *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", productID))

	var (
		deleted   *entity.Product
		cancelled *entity.Sale
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := srv.findOwnedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		wasReserved := product.Status() == entity.StatusReserved

		if product.Status() != entity.StatusInactive {
			if err := product.Deactivate(); err != nil {
				return translateEntityError(err)
			}
		}

		if err := productRepo.Delete(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		if wasReserved {
			cancelled, err = cancelPendingSale(ctx, repoFactory.NewSaleRepository(), productID)
			if err != nil {
				return err
			}
		}

		deleted = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute product delete transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), deleted)
	if cancelled != nil {
		publishEvents(ctx, srv.publisher, srv.log(ctx), cancelled)
	}

	return nil
}

// transition runs an owner-gated status change inside a transaction. A change
// that takes the product out of the RESERVED state also abandons the pending
// sale the reservation opened, so a later purchase cannot settle it under
// the wrong buyer.
func (srv *productService) transition(ctx context.Context, sellerID, productID uuid.UUID, name string, op func(*entity.Product) error) error {
	srv.log(ctx).Info("Changing product status", slog.String("op", name), slog.Any("productID", productID))

	var (
		changed   *entity.Product
		cancelled *entity.Sale
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := srv.findOwnedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		wasReserved := product.Status() == entity.StatusReserved

		if err := op(product); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to %s product", name)
		}

		if wasReserved && product.Status() != entity.StatusReserved {
			cancelled, err = cancelPendingSale(ctx, repoFactory.NewSaleRepository(), productID)
			if err != nil {
				return err
			}
		}

		changed = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to change product status", slog.String("op", name), slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrapf(err, "failed to execute product %s transaction", name)
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), changed)
	if cancelled != nil {
		publishEvents(ctx, srv.publisher, srv.log(ctx), cancelled)
	}

	return nil
}

// ApplyDiscount reduces the product's price by a percentage.
func (srv *productService) ApplyDiscount(ctx context.Context, sellerID, productID uuid.UUID, input usecase.ApplyDiscountInput) (*entity.Product, error) {
	srv.log(ctx).Info("Applying discount", slog.Any("productID", productID), slog.String("percentage", input.Percentage))

	percentage, err := decimal.NewFromString(input.Percentage)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("malformed percentage %q", input.Percentage))
	}

	var discounted *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := srv.findOwnedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		if err := product.ApplyDiscount(percentage); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to store discounted price")
		}

		discounted = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to apply discount", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute discount transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), discounted)

	return discounted, nil
}

// ReserveProduct places a hold on a product and opens a pending sale.
func (srv *productService) ReserveProduct(ctx context.Context, buyerID, productID uuid.UUID) error {
	srv.log(ctx).Info("Reserving product", slog.Any("productID", productID), slog.Any("buyerID", buyerID))

	var (
		reserved *entity.Product
		opened   *entity.Sale
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()
		saleRepo := repoFactory.NewSaleRepository()

		buyer, err := userRepo.FindByID(ctx, buyerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "reserve product")
			}

			return errors.Wrap(err, "failed to find buyer")
		}
		if !buyer.CanBuy() {
			return errors.Wrap(domainerrors.ErrUserInactive, "reserve product")
		}

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "reserve product")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if product.SellerID() == buyerID {
			return errors.Wrap(domainerrors.ErrOwnProductPurchase, "reserve product")
		}

		if err := product.Reserve(buyerID); err != nil {
			return translateEntityError(err)
		}

		sale, err := entity.NewSale(productID, product.SellerID(), buyerID, product.Price())
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to store reservation")
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to open pending sale")
		}

		reserved = product
		opened = sale

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to reserve product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reservation transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), reserved, opened)

	return nil
}

// ReleaseReservation drops a hold. Either the reserving buyer or the seller may release.
func (srv *productService) ReleaseReservation(ctx context.Context, userID, productID uuid.UUID) error {
	srv.log(ctx).Info("Releasing reservation", slog.Any("productID", productID), slog.Any("userID", userID))

	var (
		released  *entity.Product
		cancelled *entity.Sale
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		saleRepo := repoFactory.NewSaleRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "release reservation")
			}

			return errors.Wrap(err, "failed to find product")
		}

		reservedBy := product.ReservedBy()
		isReserver := reservedBy != nil && *reservedBy == userID
		if !isReserver && product.SellerID() != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "release reservation")
		}

		if err := product.ReleaseReservation(); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to store release")
		}

		// Abandon the pending sale opened by the reservation, if any.
		cancelled, err = cancelPendingSale(ctx, saleRepo, productID)
		if err != nil {
			return err
		}

		released = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to release reservation", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute release transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), released)
	if cancelled != nil {
		publishEvents(ctx, srv.publisher, srv.log(ctx), cancelled)
	}

	return nil
}

// PurchaseProduct sells a product to a buyer. An available product can be
// bought directly; a reserved one only by its reserver.
func (srv *productService) PurchaseProduct(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Sale, error) {
	srv.log(ctx).Info("Purchasing product", slog.Any("productID", productID), slog.Any("buyerID", buyerID))

	var (
		sold      *entity.Product
		completed *entity.Sale
		abandoned *entity.Sale
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()
		saleRepo := repoFactory.NewSaleRepository()

		buyer, err := userRepo.FindByID(ctx, buyerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "purchase product")
			}

			return errors.Wrap(err, "failed to find buyer")
		}
		if !buyer.CanBuy() {
			return errors.Wrap(domainerrors.ErrUserInactive, "purchase product")
		}

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "purchase product")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if product.SellerID() == buyerID {
			return errors.Wrap(domainerrors.ErrOwnProductPurchase, "purchase product")
		}

		// A reserved product is only purchasable by its reserver.
		if reservedBy := product.ReservedBy(); reservedBy != nil && *reservedBy != buyerID {
			return errors.Wrap(domainerrors.ErrProductNotAvailable, "reserved by another buyer")
		}

		if err := product.MarkAsSold(buyerID); err != nil {
			return translateEntityError(err)
		}

		// Settle the pending sale opened by this buyer's reservation, or open
		// one now. A pending sale left behind by a different buyer's
		// reservation must not be settled under this purchase; abandon it
		// and record the sale against the actual purchaser.
		sale, err := saleRepo.FindPendingByProduct(ctx, productID)
		if err != nil && !errors.Is(err, repository.ErrSaleNotFound) {
			return errors.Wrap(err, "failed to find pending sale")
		}

		if sale != nil && sale.BuyerID() != buyerID {
			if err := sale.Cancel(); err != nil {
				return translateEntityError(err)
			}
			if err := saleRepo.Update(ctx, sale); err != nil {
				return errors.Wrap(err, "failed to cancel stale pending sale")
			}
			abandoned = sale
			sale = nil
		}

		if sale == nil {
			sale, err = entity.NewSale(productID, product.SellerID(), buyerID, product.Price())
			if err != nil {
				return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return errors.Wrap(err, "failed to create sale")
			}
		}

		if err := sale.Complete(); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to store sold product")
		}
		if err := saleRepo.Update(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to store completed sale")
		}

		sold = product
		completed = sale

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to purchase product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute purchase transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), sold, completed)
	if abandoned != nil {
		publishEvents(ctx, srv.publisher, srv.log(ctx), abandoned)
	}
	srv.log(ctx).Debug("Product purchased", slog.Any("productID", productID), slog.Any("saleID", completed.ID()))

	return completed, nil
}

// GenerateProductQR renders and stores a sharing QR code for a product.
func (srv *productService) GenerateProductQR(ctx context.Context, sellerID, productID uuid.UUID) (*usecase.ProductQROutput, error) {
	srv.log(ctx).Info("Generating product QR code", slog.Any("productID", productID))

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}

	key := fmt.Sprintf("qr/%s.png", productID)
	imageURL, err := srv.fileStorage.Save(ctx, key, png, "image/png")
	if err != nil {
		return nil, errors.Wrap(err, "failed to store qr code")
	}

	data := srv.qrService.ProductQRData(productID)

	var tagged *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := srv.findOwnedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		if err := product.SetQRCode(data, imageURL); err != nil {
			return translateEntityError(err)
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to store qr assignment")
		}

		tagged = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to assign QR code", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute qr assignment transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), tagged)

	return &usecase.ProductQROutput{Data: data, ImageURL: imageURL, PNG: png}, nil
}

// ScanProductQR resolves a scanned QR payload to its product and the seller
// the buyer should contact.
func (srv *productService) ScanProductQR(ctx context.Context, qrData string) (*usecase.ScanOutput, error) {
	productID, err := srv.qrService.ParseProductQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	seller, err := srv.userRepo.FindByID(ctx, product.SellerID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "scan product qr")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return &usecase.ScanOutput{Product: product, Seller: seller}, nil
}

// cancelPendingSale abandons the pending sale an earlier reservation opened
// on the product, if one exists.
func cancelPendingSale(ctx context.Context, saleRepo repository.SaleRepository, productID uuid.UUID) (*entity.Sale, error) {
	sale, err := saleRepo.FindPendingByProduct(ctx, productID)
	if errors.Is(err, repository.ErrSaleNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending sale")
	}

	if err := sale.Cancel(); err != nil {
		return nil, translateEntityError(err)
	}
	if err := saleRepo.Update(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to cancel pending sale")
	}

	return sale, nil
}

// findOwnedProduct loads a product and enforces seller ownership.
func (srv *productService) findOwnedProduct(ctx context.Context, productRepo repository.ProductRepository, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "find owned product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.SellerID() != sellerID {
		return nil, errors.Wrap(domainerrors.ErrProductOwnershipViolation, "find owned product")
	}

	return product, nil
}

// parsePrice converts textual amount and currency into Money. An empty
// currency defaults to BRL.
func parsePrice(amount, currency string) (valueobject.Money, error) {
	cur := valueobject.Currency(currency)
	if currency == "" {
		cur = valueobject.CurrencyBRL
	}

	return valueobject.ParseMoney(amount, cur)
}

// translateEntityError maps domain sentinel errors onto AppErrors the
// delivery layer knows how to render.
func translateEntityError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidTransition):
		return errors.Wrap(domainerrors.ErrInvalidStatusTransition, err.Error())
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrMissingArgument):
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	case errors.Is(err, valueobject.ErrInvalidPercentage),
		errors.Is(err, valueobject.ErrCurrencyMismatch),
		errors.Is(err, valueobject.ErrNegativeResult):
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	default:
		return err
	}
}
