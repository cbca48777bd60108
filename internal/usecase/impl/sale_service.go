package impl

import (
	"context"
	"log/slog"

	deliverycontext "gsale/internal/delivery/context"
	"gsale/internal/domain/entity"
	domainerrors "gsale/internal/domain/errors"
	"gsale/internal/domain/repository"
	"gsale/internal/domain/service"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// saleService implements the SaleUsecase interface.
type saleService struct {
	txManager repository.TransactionManager
	saleRepo  repository.SaleRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SaleServiceParams holds dependencies for saleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SaleRepo  repository.SaleRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager: params.TxManager,
		saleRepo:  params.SaleRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPurchases returns the sales where the user is the buyer.
func (srv *saleService) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return sales, nil
}

// ListSales returns the sales where the user is the seller.
func (srv *saleService) ListSales(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// RefundSale reverses a completed sale. Only the seller may refund.
func (srv *saleService) RefundSale(ctx context.Context, sellerID, saleID uuid.UUID, input usecase.RefundSaleInput) (*entity.Sale, error) {
	srv.log(ctx).Info("Refunding sale", slog.Any("saleID", saleID))

	var refunded *entity.Sale
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.NewSaleRepository()

		sale, err := saleRepo.FindByID(ctx, saleID)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "refund sale")
			}

			return errors.Wrap(err, "failed to find sale")
		}

		if sale.SellerID() != sellerID {
			return errors.Wrap(domainerrors.ErrForbidden, "refund sale")
		}

		if err := sale.Refund(input.Reason); err != nil {
			return translateEntityError(err)
		}

		if err := saleRepo.Update(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to store refund")
		}

		refunded = sale

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to refund sale", slog.Any("saleID", saleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refund transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), refunded)

	return refunded, nil
}
