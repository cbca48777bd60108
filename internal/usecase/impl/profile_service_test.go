package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gsale/internal/domain/entity"
	domainerrors "gsale/internal/domain/errors"
	"gsale/internal/domain/repository"
	"gsale/internal/errors"
	mockRepo "gsale/internal/mocks/repository"
	mockSvc "gsale/internal/mocks/service"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	hasher      *mockSvc.MockPasswordHasher
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	factory := new(mockRepo.MockRepositoryFactory)
	userRepo := new(mockRepo.MockUserRepository)
	refreshRepo := new(mockRepo.MockRefreshTokenRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	publisher := new(mockSvc.MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(ProfileServiceParams{
		TxManager: &mockRepo.FakeTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		Hasher:    hasher,
		Publisher: publisher,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:     svc,
		factory:     factory,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		hasher:      hasher,
		publisher:   publisher,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := testBuyer(t)
	fx.userRepo.On("FindByID", ctx, user.ID()).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID())

	require.NoError(t, err)
	assert.Equal(t, user.ID(), got.ID())
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := testBuyer(t)

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, user.ID()).Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)

	name := "Maria Souza"
	phone := "21987654321"
	updated, err := fx.service.UpdateProfile(ctx, user.ID(), usecase.UpdateProfileInput{
		Name:  &name,
		Phone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Name())
	assert.Equal(t, "21", updated.Phone().AreaCode())
}

func TestProfileService_UpdateProfile_BadPhone(t *testing.T) {
	fx := createTestProfileService(t)

	phone := "123"
	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), usecase.UpdateProfileInput{Phone: &phone})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileService_ChangePassword_RevokesSessions(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := testBuyer(t)
	oldHash := user.PasswordHash()

	fx.hasher.On("Hash", "new-long-password").Return("$2a$10$newhash", nil)
	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewRefreshTokenRepository").Return(fx.refreshRepo)
	fx.userRepo.On("FindByID", ctx, user.ID()).Return(user, nil)
	fx.hasher.On("Check", "current-password", oldHash).Return(true)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.refreshRepo.On("DeleteRefreshTokensByUserID", ctx, user.ID()).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	err := fx.service.ChangePassword(ctx, user.ID(), usecase.ChangePasswordInput{
		CurrentPassword: "current-password",
		NewPassword:     "new-long-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", user.PasswordHash())
	fx.refreshRepo.AssertCalled(t, "DeleteRefreshTokensByUserID", ctx, user.ID())
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := testBuyer(t)

	fx.hasher.On("Hash", "new-long-password").Return("$2a$10$newhash", nil)
	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.factory.On("NewRefreshTokenRepository").Return(fx.refreshRepo)
	fx.userRepo.On("FindByID", ctx, user.ID()).Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash()).Return(false)

	err := fx.service.ChangePassword(ctx, user.ID(), usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-long-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestProfileService_BecomeSeller_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := testBuyer(t)

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, user.ID()).Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	promoted, err := fx.service.BecomeSeller(ctx, user.ID())

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, promoted.Role())
	fx.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestProfileService_BecomeSeller_AdminRejected(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	buyer := testBuyer(t)
	admin, err := entity.RestoreUser(entity.RestoreUserParams{
		ID:           buyer.ID(),
		Name:         buyer.Name(),
		Email:        buyer.Email(),
		CPF:          buyer.CPF(),
		Phone:        buyer.Phone(),
		Role:         entity.RoleAdmin,
		PasswordHash: buyer.PasswordHash(),
		IsActive:     true,
		CreatedAt:    buyer.CreatedAt(),
		UpdatedAt:    buyer.UpdatedAt(),
	})
	require.NoError(t, err)

	fx.factory.On("NewUserRepository").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, admin.ID()).Return(admin, nil)

	_, err = fx.service.BecomeSeller(ctx, admin.ID())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
