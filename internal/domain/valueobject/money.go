// Package valueobject contains the immutable value types of the domain.
// A value object has no identity of its own: two values are equal when
// their normalized contents are equal, and every operation returns a new
// value instead of mutating the receiver.
package valueobject

import (
	"fmt"
	"strings"

	"gsale/internal/errors"

	"github.com/shopspring/decimal"
)

// Currency is the ISO code of a supported currency.
type Currency string

const (
	// CurrencyBRL is the Brazilian real, the default currency.
	CurrencyBRL Currency = "BRL"
	// CurrencyUSD is the US dollar.
	CurrencyUSD Currency = "USD"
	// CurrencyEUR is the euro.
	CurrencyEUR Currency = "EUR"
)

// IsValid checks if the Currency is a supported value.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyEUR:
		return true
	default:
		return false
	}
}

// String returns the ISO code of the currency.
func (c Currency) String() string {
	return string(c)
}

// Money construction and arithmetic errors.
var (
	ErrInvalidAmount       = errors.New("invalid money amount")
	ErrNegativeAmount      = errors.New("money amount cannot be negative")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrNegativeResult      = errors.New("operation would result in negative money")
	ErrNegativeFactor      = errors.New("cannot multiply money by a negative factor")
	ErrInvalidPercentage   = errors.New("discount percentage must be between 0 and 100")
)

const moneyScale = 2

// Money is an immutable monetary amount with two fractional digits and a
// currency tag. The zero value is not usable; construct through NewMoney
// or MustMoney.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney builds a Money from a decimal amount, rounding half-up to two
// fractional digits. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, errors.Wrapf(ErrUnsupportedCurrency, "%q", currency)
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts Money permits.
	rounded := amount.Round(moneyScale)
	if rounded.IsNegative() {
		return Money{}, ErrNegativeAmount
	}

	return Money{amount: rounded, currency: currency}, nil
}

// ParseMoney builds a Money from a textual amount such as "10.005".
func ParseMoney(amount string, currency Currency) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errors.Wrapf(ErrInvalidAmount, "%q", amount)
	}

	return NewMoney(dec, currency)
}

// MustMoney is a ParseMoney variant for constants in tests and fixtures.
// It panics on invalid input.
func MustMoney(amount string, currency Currency) Money {
	m, err := ParseMoney(amount, currency)
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the rounded decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency tag.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "cannot add %s to %s", other.currency, m.currency)
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts of the same currency.
// A negative result is rejected.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "cannot subtract %s from %s", other.currency, m.currency)
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeResult
	}

	return NewMoney(result, m.currency)
}

// Multiply scales the amount by a non-negative factor, re-rounding.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, ErrNegativeFactor
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// ApplyDiscount returns the amount reduced by a percentage in [0,100].
func (m Money) ApplyDiscount(percentage decimal.Decimal) (Money, error) {
	hundred := decimal.NewFromInt(100)
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return Money{}, ErrInvalidPercentage
	}

	factor := decimal.NewFromInt(1).Sub(percentage.Div(hundred))

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// LessThan compares amounts of the same currency.
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, errors.Wrapf(ErrCurrencyMismatch, "cannot compare %s with %s", m.currency, other.currency)
	}

	return m.amount.LessThan(other.amount), nil
}

// GreaterThan compares amounts of the same currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, errors.Wrapf(ErrCurrencyMismatch, "cannot compare %s with %s", m.currency, other.currency)
	}

	return m.amount.GreaterThan(other.amount), nil
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Formatted returns the amount with its conventional currency symbol and
// thousands grouping. BRL swaps the separators: "R$ 1.234,56".
func (m Money) Formatted() string {
	switch m.currency {
	case CurrencyBRL:
		return "R$ " + m.grouped(".", ",")
	case CurrencyUSD:
		return "$ " + m.grouped(",", ".")
	case CurrencyEUR:
		return "€ " + m.grouped(",", ".")
	default:
		return fmt.Sprintf("%s %s", m.currency, m.grouped(",", "."))
	}
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Formatted()
}

// grouped renders the fixed two-decimal amount with the integer digits
// grouped in threes. Money is never negative, so no sign handling.
func (m Money) grouped(thousands, decimalSep string) string {
	intPart, fracPart, _ := strings.Cut(m.amount.StringFixed(moneyScale), ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousands)
		}
		b.WriteRune(digit)
	}
	b.WriteString(decimalSep)
	b.WriteString(fracPart)

	return b.String()
}
