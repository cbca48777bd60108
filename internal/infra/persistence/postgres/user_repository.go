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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// FindByCPF retrieves a single user by their CPF digits.
func (repo *userRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by cpf")
	}

	return toUserDomain(&userM)
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or cpf already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or cpf already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity. The value
// objects and the aggregate re-validate the stored snapshot on the way in.
func toUserDomain(data *model.UserModel) (*entity.User, error) {
	email, err := valueobject.NewEmail(data.Email)
	if err != nil {
		return nil, errors.Wrapf(err, "stored email for user %s", data.ID)
	}

	cpf, err := valueobject.NewCPF(data.CPF)
	if err != nil {
		return nil, errors.Wrapf(err, "stored cpf for user %s", data.ID)
	}

	phone, err := valueobject.NewPhone(data.Phone)
	if err != nil {
		return nil, errors.Wrapf(err, "stored phone for user %s", data.ID)
	}

	user, err := entity.RestoreUser(entity.RestoreUserParams{
		ID:            data.ID,
		Name:          data.Name,
		Email:         email,
		CPF:           cpf,
		Phone:         phone,
		Role:          entity.Role(data.Role),
		PasswordHash:  data.PasswordHash,
		IsActive:      data.IsActive,
		EmailVerified: data.EmailVerified,
		LastLoginAt:   data.LastLoginAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "restore user %s", data.ID)
	}

	return user, nil
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            data.ID(),
		Name:          data.Name(),
		Email:         data.Email().String(),
		CPF:           data.CPF().String(),
		Phone:         data.Phone().String(),
		Role:          string(data.Role()),
		PasswordHash:  data.PasswordHash(),
		IsActive:      data.IsActive(),
		EmailVerified: data.EmailVerified(),
		LastLoginAt:   data.LastLoginAt(),
		CreatedAt:     data.CreatedAt(),
		UpdatedAt:     data.UpdatedAt(),
	}
}
