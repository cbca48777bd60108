package valueobject

import (
	"strings"

	"gsale/internal/errors"
)

// ErrInvalidFormat is returned when a value object cannot be built from the
// supplied raw input. The wrapping message carries the offending input.
var ErrInvalidFormat = errors.New("invalid format")

const cpfLength = 11

// CPF is a validated Brazilian tax identifier. It stores the canonical
// 11-digit form and is immutable after construction.
type CPF struct {
	digits string
}

// NewCPF strips formatting characters from the raw input and validates the
// result against the CPF check-digit algorithm.
func NewCPF(raw string) (CPF, error) {
	digits := stripNonDigits(raw)
	if !isValidCPF(digits) {
		return CPF{}, errors.Wrapf(ErrInvalidFormat, "cpf %q", raw)
	}

	return CPF{digits: digits}, nil
}

// isValidCPF checks length, the all-identical-digits degenerate case, and
// both weighted modulo-11 check digits.
func isValidCPF(cpf string) bool {
	if len(cpf) != cpfLength {
		return false
	}

	identical := true
	for i := 1; i < cpfLength; i++ {
		if cpf[i] != cpf[0] {
			identical = false

			break
		}
	}
	if identical {
		return false
	}

	if cpfCheckDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}

	return cpfCheckDigit(cpf, 10) == int(cpf[10]-'0')
}

// cpfCheckDigit computes the check digit over the first n digits with
// weights n+1-i, mapping a result of 10 to 0.
func cpfCheckDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}

	digit := (sum * 10) % 11
	if digit == 10 {
		digit = 0
	}

	return digit
}

// String returns the canonical unformatted 11-digit value.
func (c CPF) String() string {
	return c.digits
}

// Formatted returns the conventional XXX.XXX.XXX-XX representation.
func (c CPF) Formatted() string {
	return c.digits[:3] + "." + c.digits[3:6] + "." + c.digits[6:9] + "-" + c.digits[9:]
}

// Equal reports whether two CPFs hold the same canonical value.
func (c CPF) Equal(other CPF) bool {
	return c.digits == other.digits
}

// IsZero reports whether the CPF is the unset zero value.
func (c CPF) IsZero() bool {
	return c.digits == ""
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
