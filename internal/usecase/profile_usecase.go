package usecase

import (
	"context"

	"gsale/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	BecomeSeller(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a user profile.
// Nil fields keep their current value.
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}
