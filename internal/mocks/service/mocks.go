// Package service provides hand-written testify mocks for the domain
// service interfaces used in use case tests.
package service

import (
	"context"
	"time"

	"gsale/internal/domain/entity"
	"gsale/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) GetAccessTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	args := m.Called(productID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *MockQRCodeService) ProductQRData(productID uuid.UUID) string {
	return m.Called(productID).String(0)
}

func (m *MockQRCodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockFileStorage mocks service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)

	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockFileStorage) Close() error {
	return m.Called().Error(0)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event entity.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
