package impl

import (
	"context"
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
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads a user by ID.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes the user's display name and phone number.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var phone *valueobject.Phone
	if input.Phone != nil {
		parsed, err := valueobject.NewPhone(*input.Phone)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		phone = &parsed
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "update profile")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := user.UpdateProfile(input.Name, phone); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	if len(input.NewPassword) < 8 {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("hash new password")
	}

	var changed *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "change password")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash()) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}

		if err := user.ChangePassword(newHash); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store new password")
		}

		// A password change invalidates every open session.
		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		changed = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to change password", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), changed)

	return nil
}

// BecomeSeller grants the seller role to the user.
func (srv *profileService) BecomeSeller(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Info("Promoting user to seller", slog.Any("userID", userID))

	var promoted *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "become seller")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrUserInactive, "become seller")
		}

		if err := user.PromoteToSeller(); err != nil {
			return errors.Wrap(domainerrors.ErrConflict, err.Error())
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user role")
		}

		promoted = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to promote user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute seller promotion transaction")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), promoted)

	return promoted, nil
}
