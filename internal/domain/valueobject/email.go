package valueobject

import (
	"regexp"
	"strings"

	"gsale/internal/errors"
)

// emailRegex is deliberately conservative: a non-empty local part, a domain
// and at least a two-letter TLD.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const emailMaxLength = 255

// Email is a validated, normalized (trimmed, lowercased) email address.
type Email struct {
	value string
}

// NewEmail normalizes and validates the raw input.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, errors.Wrap(ErrInvalidFormat, "email is empty")
	}
	if len(value) > emailMaxLength {
		return Email{}, errors.Wrapf(ErrInvalidFormat, "email exceeds %d characters", emailMaxLength)
	}
	if !emailRegex.MatchString(value) {
		return Email{}, errors.Wrapf(ErrInvalidFormat, "email %q", raw)
	}

	return Email{value: value}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// Domain returns the part after the '@'.
func (e Email) Domain() string {
	at := strings.LastIndexByte(e.value, '@')

	return e.value[at+1:]
}

// LocalPart returns the part before the '@'.
func (e Email) LocalPart() string {
	at := strings.LastIndexByte(e.value, '@')

	return e.value[:at]
}

// Equal reports whether two emails hold the same normalized value.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the Email is the unset zero value.
func (e Email) IsZero() bool {
	return e.value == ""
}
