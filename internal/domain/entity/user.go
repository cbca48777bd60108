package entity

import (
	"strings"
	"time"

	"gsale/internal/domain/valueobject"
	"gsale/internal/errors"

	"github.com/google/uuid"
)

// Role grants a user a set of marketplace capabilities.
type Role string

const (
	// RoleBuyer can browse, reserve and buy products.
	RoleBuyer Role = "buyer"
	// RoleSeller can additionally list products for sale.
	RoleSeller Role = "seller"
	// RoleAdmin can sell and manage any account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a recognized value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

const (
	userNameMin = 3
	userNameMax = 100
)

// User is the account aggregate. Contact data lives in value objects so a
// user never holds an unvalidated email, CPF or phone number.
type User struct {
	Base

	name          string
	email         valueobject.Email
	cpf           valueobject.CPF
	phone         valueobject.Phone
	role          Role
	passwordHash  string
	isActive      bool
	emailVerified bool
	lastLoginAt   *time.Time
}

// NewUserParams carries the constructor arguments for a fresh user.
type NewUserParams struct {
	Name         string
	Email        valueobject.Email
	CPF          valueobject.CPF
	Phone        valueobject.Phone
	PasswordHash string
}

// NewUser creates an active, unverified buyer.
func NewUser(params NewUserParams) (*User, error) {
	user := &User{
		Base:         newBase(),
		name:         params.Name,
		email:        params.Email,
		cpf:          params.CPF,
		phone:        params.Phone,
		role:         RoleBuyer,
		passwordHash: params.PasswordHash,
		isActive:     true,
	}

	if err := user.validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUserParams carries a persisted snapshot back into the domain.
type RestoreUserParams struct {
	ID            uuid.UUID
	Name          string
	Email         valueobject.Email
	CPF           valueobject.CPF
	Phone         valueobject.Phone
	Role          Role
	PasswordHash  string
	IsActive      bool
	EmailVerified bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RestoreUser rebuilds a user from persistence, re-validating the snapshot.
func RestoreUser(params RestoreUserParams) (*User, error) {
	user := &User{
		Base:          restoreBase(params.ID, params.CreatedAt, params.UpdatedAt),
		name:          params.Name,
		email:         params.Email,
		cpf:           params.CPF,
		phone:         params.Phone,
		role:          params.Role,
		passwordHash:  params.PasswordHash,
		isActive:      params.IsActive,
		emailVerified: params.EmailVerified,
		lastLoginAt:   params.LastLoginAt,
	}

	if err := user.validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// --- Accessors ---

func (u *User) Name() string             { return u.name }
func (u *User) Email() valueobject.Email { return u.email }
func (u *User) CPF() valueobject.CPF     { return u.cpf }
func (u *User) Phone() valueobject.Phone { return u.phone }
func (u *User) Role() Role               { return u.role }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) EmailVerified() bool      { return u.emailVerified }

// LastLoginAt returns the most recent login time, or nil before first login.
func (u *User) LastLoginAt() *time.Time {
	if u.lastLoginAt == nil {
		return nil
	}
	at := *u.lastLoginAt

	return &at
}

// CanSell reports whether the user may list products for sale.
func (u *User) CanSell() bool {
	return u.isActive && (u.role == RoleSeller || u.role == RoleAdmin)
}

// CanBuy reports whether the user may reserve or buy products.
func (u *User) CanBuy() bool {
	return u.isActive
}

// --- Operations ---

// UpdateProfile changes the user's display name and phone. Nil fields keep
// their current value.
func (u *User) UpdateProfile(name *string, phone *valueobject.Phone) error {
	next := *u
	if name != nil {
		next.name = *name
	}
	if phone != nil {
		next.phone = *phone
	}

	if err := next.validate(); err != nil {
		return err
	}

	*u = next
	u.touch()

	return nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return errors.Wrap(ErrMissingArgument, "password hash cannot be empty")
	}

	u.passwordHash = newHash
	u.touch()
	u.record(PasswordChanged{UserID: u.ID()})

	return nil
}

// Activate enables the account.
func (u *User) Activate() {
	u.isActive = true
	u.touch()
	u.record(UserActivated{UserID: u.ID()})
}

// Deactivate disables the account. Inactive users can neither buy nor sell.
func (u *User) Deactivate() {
	u.isActive = false
	u.touch()
	u.record(UserDeactivated{UserID: u.ID()})
}

// VerifyEmail marks the email address as confirmed.
func (u *User) VerifyEmail() {
	u.emailVerified = true
	u.touch()
	u.record(EmailVerified{UserID: u.ID()})
}

// RecordLogin stamps the last login time.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.lastLoginAt = &now
	u.touch()
}

// PromoteToSeller grants the seller role. Admins already sell and cannot be
// demoted through promotion.
func (u *User) PromoteToSeller() error {
	if u.role == RoleAdmin {
		return errors.Wrap(ErrInvalidTransition, "admin users cannot be promoted to seller")
	}

	u.role = RoleSeller
	u.touch()
	u.record(UserPromotedToSeller{UserID: u.ID()})

	return nil
}

func (u *User) validate() error {
	name := strings.TrimSpace(u.name)
	if len(name) < userNameMin {
		return newValidationError("name", "must be at least 3 characters long")
	}
	if len(u.name) > userNameMax {
		return newValidationError("name", "cannot exceed 100 characters")
	}

	if u.email.IsZero() {
		return newValidationError("email", "is required")
	}
	if u.cpf.IsZero() {
		return newValidationError("cpf", "is required")
	}
	if u.phone.IsZero() {
		return newValidationError("phone", "is required")
	}

	if !u.role.IsValid() {
		return newValidationError("role", "is not a recognized role")
	}

	return nil
}
