package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token after the old one expires, without requiring
// credentials. Unlike the aggregates above it carries no behavior beyond
// expiry checks, so the fields stay exported.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsExpired reports whether the session has passed its expiry time.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
