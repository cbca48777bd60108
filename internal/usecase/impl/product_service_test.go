package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gsale/internal/domain/entity"
	domainerrors "gsale/internal/domain/errors"
	"gsale/internal/domain/repository"
	"gsale/internal/domain/valueobject"
	"gsale/internal/errors"
	mockRepo "gsale/internal/mocks/repository"
	mockSvc "gsale/internal/mocks/service"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	saleRepo    *mockRepo.MockSaleRepository
	qrService   *mockSvc.MockQRCodeService
	fileStorage *mockSvc.MockFileStorage
	publisher   *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	factory := new(mockRepo.MockRepositoryFactory)
	productRepo := new(mockRepo.MockProductRepository)
	userRepo := new(mockRepo.MockUserRepository)
	saleRepo := new(mockRepo.MockSaleRepository)
	qrService := new(mockSvc.MockQRCodeService)
	fileStorage := new(mockSvc.MockFileStorage)
	publisher := new(mockSvc.MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		TxManager:   &mockRepo.FakeTransactionManager{Factory: factory},
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		FileStorage: fileStorage,
		Publisher:   publisher,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		factory:     factory,
		productRepo: productRepo,
		userRepo:    userRepo,
		saleRepo:    saleRepo,
		qrService:   qrService,
		fileStorage: fileStorage,
		publisher:   publisher,
	}
}

func testSeller(t *testing.T) *entity.User {
	t.Helper()

	user := testBuyer(t)
	require.NoError(t, user.PromoteToSeller())
	user.ClearEvents()

	return user
}

func testBuyer(t *testing.T) *entity.User {
	t.Helper()

	email, err := valueobject.NewEmail("buyer@example.com")
	require.NoError(t, err)
	cpf, err := valueobject.NewCPF("52998224725")
	require.NoError(t, err)
	phone, err := valueobject.NewPhone("11987654321")
	require.NoError(t, err)

	user, err := entity.NewUser(entity.NewUserParams{
		Name:         "Joao Pereira",
		Email:        email,
		CPF:          cpf,
		Phone:        phone,
		PasswordHash: "$2a$10$hashhashhashhashhashha",
	})
	require.NoError(t, err)
	user.ClearEvents()

	return user
}

func testProduct(t *testing.T, sellerID uuid.UUID) *entity.Product {
	t.Helper()

	product, err := entity.NewProduct(entity.NewProductParams{
		Name:        "Wooden Bookshelf",
		Description: "Solid pine bookshelf with five shelves",
		Price:       valueobject.MustMoney("250.00", valueobject.CurrencyBRL),
		SellerID:    sellerID,
		Category:    entity.CategoryFurniture,
		Quantity:    1,
	})
	require.NoError(t, err)
	product.ClearEvents()

	return product
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.userRepo.On("FindByID", ctx, seller.ID()).Return(seller, nil)
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	product, err := fx.service.CreateProduct(ctx, seller.ID(), usecase.CreateProductInput{
		Name:        "Wooden Bookshelf",
		Description: "Solid pine bookshelf with five shelves",
		Price:       "250.00",
		Category:    "furniture",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, product.Status())
	assert.Equal(t, 1, product.Quantity())
	assert.Empty(t, product.Events())
	fx.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestProductService_CreateProduct_BuyerRejected(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	buyer := testBuyer(t)

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.userRepo.On("FindByID", ctx, buyer.ID()).Return(buyer, nil)

	_, err := fx.service.CreateProduct(ctx, buyer.ID(), usecase.CreateProductInput{
		Name:        "Wooden Bookshelf",
		Description: "Solid pine bookshelf with five shelves",
		Price:       "250.00",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerRequired))
	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_MalformedPrice(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), usecase.CreateProductInput{
		Name:        "Wooden Bookshelf",
		Description: "Solid pine bookshelf with five shelves",
		Price:       "not-a-number",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_GetProduct_CountsView(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())

	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("IncrementViewCount", ctx, product.ID()).Return(nil)

	got, err := fx.service.GetProduct(ctx, product.ID())

	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount())
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.On("FindByID", ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ReserveProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, buyer.ID()).Return(buyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("Create", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	err := fx.service.ReserveProduct(ctx, buyer.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.StatusReserved, product.Status())
	require.NotNil(t, product.ReservedBy())
	assert.Equal(t, buyer.ID(), *product.ReservedBy())
}

func TestProductService_ReserveProduct_OwnProductRejected(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, seller.ID()).Return(seller, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)

	err := fx.service.ReserveProduct(ctx, seller.ID(), product.ID())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnProductPurchase))
	assert.Equal(t, entity.StatusAvailable, product.Status())
}

func TestProductService_PurchaseProduct_FromReservation(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())
	require.NoError(t, product.Reserve(buyer.ID()))
	product.ClearEvents()

	pending, err := entity.NewSale(product.ID(), seller.ID(), buyer.ID(), product.Price())
	require.NoError(t, err)
	pending.ClearEvents()

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, buyer.ID()).Return(buyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(pending, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("Update", ctx, pending).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	sale, err := fx.service.PurchaseProduct(ctx, buyer.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSold, product.Status())
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status())
	require.NotNil(t, sale.CompletedAt())
	fx.saleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_PurchaseProduct_ReservedByAnother(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())
	require.NoError(t, product.Reserve(uuid.New()))

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, buyer.ID()).Return(buyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)

	_, err := fx.service.PurchaseProduct(ctx, buyer.ID(), product.ID())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotAvailable))
	assert.Equal(t, entity.StatusReserved, product.Status())
}

func TestProductService_PurchaseProduct_DirectBuyCreatesSale(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, buyer.ID()).Return(buyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(nil, repository.ErrSaleNotFound)
	fx.saleRepo.On("Create", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("Update", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	sale, err := fx.service.PurchaseProduct(ctx, buyer.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status())
	assert.True(t, product.Price().Equal(sale.Price()))
}

func TestProductService_UpdateProduct_OwnershipEnforced(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(t, uuid.New())
	stranger := uuid.New()

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)

	name := "Renamed Shelf"
	_, err := fx.service.UpdateProduct(ctx, stranger, product.ID(), usecase.UpdateProductInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_ApplyDiscount(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	discounted, err := fx.service.ApplyDiscount(ctx, seller.ID(), product.ID(), usecase.ApplyDiscountInput{Percentage: "50"})

	require.NoError(t, err)
	assert.Equal(t, "125.00", discounted.Price().Amount().StringFixed(2))
}

func TestProductService_ApplyDiscount_OutOfRange(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)

	_, err := fx.service.ApplyDiscount(ctx, seller.ID(), product.ID(), usecase.ApplyDiscountInput{Percentage: "150"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "250.00", product.Price().Amount().StringFixed(2))
	fx.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_GenerateProductQR(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())
	png := []byte{0x89, 'P', 'N', 'G'}
	data := "gsale://product/" + product.ID().String()

	fx.qrService.On("GenerateProductQR", product.ID()).Return(png, nil)
	fx.qrService.On("ProductQRData", product.ID()).Return(data)
	fx.fileStorage.On("Save", ctx, "qr/"+product.ID().String()+".png", png, "image/png").
		Return("https://cdn.example.com/qr/"+product.ID().String()+".png", nil)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	out, err := fx.service.GenerateProductQR(ctx, seller.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, data, out.Data)
	assert.Equal(t, png, out.PNG)
	assert.Equal(t, data, product.QRCodeData())
}

func TestProductService_ScanProductQR(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	product := testProduct(t, seller.ID())
	data := "gsale://product/" + product.ID().String()

	fx.qrService.On("ParseProductQR", data).Return(product.ID(), nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("IncrementViewCount", ctx, product.ID()).Return(nil)
	fx.userRepo.On("FindByID", ctx, seller.ID()).Return(seller, nil)

	got, err := fx.service.ScanProductQR(ctx, data)

	require.NoError(t, err)
	assert.Equal(t, product.ID(), got.Product.ID())
	assert.Equal(t, seller.ID(), got.Seller.ID())
}

func TestProductService_DeleteProduct_DeactivatesAndRemoves(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	product := testProduct(t, sellerID)

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Delete", ctx, product.ID()).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, sellerID, product.ID()))
	assert.Equal(t, entity.StatusInactive, product.Status())
}

func TestProductService_DeactivateProduct_ReservedCancelsPendingSale(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())
	require.NoError(t, product.Reserve(buyer.ID()))
	product.ClearEvents()

	pending, err := entity.NewSale(product.ID(), seller.ID(), buyer.ID(), product.Price())
	require.NoError(t, err)
	pending.ClearEvents()

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(pending, nil)
	fx.saleRepo.On("Update", ctx, pending).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.DeactivateProduct(ctx, seller.ID(), product.ID()))

	assert.Equal(t, entity.StatusInactive, product.Status())
	assert.Equal(t, entity.SaleStatusCancelled, pending.Status())
}

func TestProductService_PurchaseProduct_AfterReactivationRecordsActualBuyer(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	firstBuyer := testBuyer(t)
	secondBuyer := testBuyer(t)
	product := testProduct(t, seller.ID())
	require.NoError(t, product.Reserve(firstBuyer.ID()))
	product.ClearEvents()

	pending, err := entity.NewSale(product.ID(), seller.ID(), firstBuyer.ID(), product.Price())
	require.NoError(t, err)
	pending.ClearEvents()

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, secondBuyer.ID()).Return(secondBuyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("Update", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.saleRepo.On("Create", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	// The deactivation abandons the first buyer's pending sale, so the
	// later purchase opens a fresh one.
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(pending, nil).Once()
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(nil, repository.ErrSaleNotFound).Once()

	require.NoError(t, fx.service.DeactivateProduct(ctx, seller.ID(), product.ID()))
	require.NoError(t, fx.service.ActivateProduct(ctx, seller.ID(), product.ID()))

	sale, err := fx.service.PurchaseProduct(ctx, secondBuyer.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, pending.Status())
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status())
	assert.Equal(t, secondBuyer.ID(), sale.BuyerID())
	assert.NotEqual(t, pending.ID(), sale.ID())
}

func TestProductService_PurchaseProduct_StalePendingSaleAbandoned(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	firstBuyer := testBuyer(t)
	secondBuyer := testBuyer(t)
	product := testProduct(t, seller.ID())

	// A pending sale left behind by another buyer's reservation, on a
	// product that is available again.
	stale, err := entity.NewSale(product.ID(), seller.ID(), firstBuyer.ID(), product.Price())
	require.NoError(t, err)
	stale.ClearEvents()

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.userRepo.On("FindByID", ctx, secondBuyer.ID()).Return(secondBuyer, nil)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Update", ctx, product).Return(nil)
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(stale, nil)
	fx.saleRepo.On("Update", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.saleRepo.On("Create", ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	sale, err := fx.service.PurchaseProduct(ctx, secondBuyer.ID(), product.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, stale.Status())
	assert.Equal(t, secondBuyer.ID(), sale.BuyerID())
	fx.saleRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*entity.Sale"))
}

func TestProductService_DeleteProduct_ReservedCancelsPendingSale(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := testSeller(t)
	buyer := testBuyer(t)
	product := testProduct(t, seller.ID())
	require.NoError(t, product.Reserve(buyer.ID()))
	product.ClearEvents()

	pending, err := entity.NewSale(product.ID(), seller.ID(), buyer.ID(), product.Price())
	require.NoError(t, err)
	pending.ClearEvents()

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.factory.On("NewSaleRepository").Return(fx.saleRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)
	fx.productRepo.On("Delete", ctx, product.ID()).Return(nil)
	fx.saleRepo.On("FindPendingByProduct", ctx, product.ID()).Return(pending, nil)
	fx.saleRepo.On("Update", ctx, pending).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, seller.ID(), product.ID()))

	assert.Equal(t, entity.StatusInactive, product.Status())
	assert.Equal(t, entity.SaleStatusCancelled, pending.Status())
}

func TestProductService_DeleteProduct_SoldRejected(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	product := testProduct(t, sellerID)
	require.NoError(t, product.MarkAsSold(uuid.New()))
	product.ClearEvents()

	fx.factory.On("NewProductRepository").Return(fx.productRepo)
	fx.productRepo.On("FindByID", ctx, product.ID()).Return(product, nil)

	err := fx.service.DeleteProduct(ctx, sellerID, product.ID())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
