// Package repository provides hand-written testify mocks for the
// persistence interfaces used in use case tests.
package repository

import (
	"context"

	"gsale/internal/domain/entity"
	"gsale/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// FakeTransactionManager runs the callback against a fixed factory without
// a database. The returned error is exactly the callback's error, matching
// commit/rollback visibility in tests.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) NewSaleRepository() repository.SaleRepository {
	return m.Called().Get(0).(repository.SaleRepository)
}

func (m *MockRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return m.Called().Get(0).(repository.RefreshTokenRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	args := m.Called(ctx, cpf)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, filters repository.SearchFilters, page repository.Pagination) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filters, page)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerID)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSaleRepository mocks repository.SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	sale, _ := args.Get(0).(*entity.Sale)

	return sale, args.Error(1)
}

func (m *MockSaleRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Sale, error) {
	args := m.Called(ctx, buyerID)
	sales, _ := args.Get(0).([]*entity.Sale)

	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error) {
	args := m.Called(ctx, sellerID)
	sales, _ := args.Get(0).([]*entity.Sale)

	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindPendingByProduct(ctx context.Context, productID uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, productID)
	sale, _ := args.Get(0).(*entity.Sale)

	return sale, args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
