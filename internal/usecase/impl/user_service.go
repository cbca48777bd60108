// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	cpf, err := valueobject.NewCPF(input.CPF)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	phone, err := valueobject.NewPhone(input.Phone)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if len(input.Password) < 8 {
		return nil, domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Reject duplicate accounts before touching the unique indexes.
		if _, err := userRepo.FindByEmail(ctx, email.String()); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if _, err := userRepo.FindByCPF(ctx, cpf.String()); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "cpf already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check cpf uniqueness")
		}

		// 2. Build and persist the new user.
		user, err := entity.NewUser(entity.NewUserParams{
			Name:         input.Name,
			Email:        email,
			CPF:          cpf,
			Phone:        phone,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID()))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and opens a new session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Attempting login", slog.String("email", input.Email))

	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "malformed email")
	}

	var (
		loggedInUser       *entity.User
		accessToken        string
		refreshTokenString string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Look up the account.
		user, err := userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, user.PasswordHash()) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrUserInactive, "login rejected")
		}

		// 3. Generate new tokens.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID(), user.Role().String())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 4. Securely store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID(),
			TokenHash: hashRefreshToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// 5. Stamp last login.
		user.RecordLogin()
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record login")
		}

		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
func (srv *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Verify the refresh token exists in the database.
		tokenHash := hashRefreshToken(input.RefreshToken)
		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}
		if stored.IsExpired() {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh token expired")
		}

		// 2. Fetch the user.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrUserInactive, "refresh rejected")
		}

		// 3. Generate new tokens.
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID(), user.Role().String())
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// 4. Store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID(),
			TokenHash: hashRefreshToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// 5. Delete the old refresh token.
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			// Log the error but don't fail the transaction, as the user has a new valid token.
			srv.log(ctx).Warn("Failed to delete old refresh token", slog.Any("error", err))
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout invalidates a single session by deleting its refresh token.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := hashRefreshToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}

	return nil
}

// LogoutAll ends every session belonging to the user.
func (srv *userService) LogoutAll(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed user id")
	}

	srv.log(ctx).Info("Logging out all sessions", slog.Any("userID", id))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout-all transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout-all transaction")
	}

	return nil
}

// hashRefreshToken derives the lookup hash stored instead of the raw token.
func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
