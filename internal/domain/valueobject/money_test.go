package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"round up at midpoint", "10.005", "10.01"},
		{"round down below midpoint", "10.004", "10.00"},
		{"already two places", "10.10", "10.10"},
		{"integer", "10", "10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.amount, CurrencyBRL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount().StringFixed(2))
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency Currency
		wantErr  error
	}{
		{"not a number", "abc", CurrencyBRL, ErrInvalidAmount},
		{"negative amount", "-1.00", CurrencyBRL, ErrNegativeAmount},
		{"unsupported currency", "10.00", Currency("JPY"), ErrUnsupportedCurrency},
		{"empty amount", "", CurrencyBRL, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoney(tt.amount, tt.currency)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMoney_Add(t *testing.T) {
	sum, err := MustMoney("10.00", CurrencyBRL).Add(MustMoney("5.00", CurrencyBRL))
	require.NoError(t, err)
	assert.Equal(t, "15.00", sum.Amount().StringFixed(2))

	_, err = MustMoney("10.00", CurrencyBRL).Add(MustMoney("5.00", CurrencyUSD))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Subtract(t *testing.T) {
	diff, err := MustMoney("10.00", CurrencyBRL).Subtract(MustMoney("4.50", CurrencyBRL))
	require.NoError(t, err)
	assert.Equal(t, "5.50", diff.Amount().StringFixed(2))

	_, err = MustMoney("5.00", CurrencyBRL).Subtract(MustMoney("10.00", CurrencyBRL))
	assert.ErrorIs(t, err, ErrNegativeResult)

	_, err = MustMoney("5.00", CurrencyBRL).Subtract(MustMoney("1.00", CurrencyEUR))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Multiply(t *testing.T) {
	tripled, err := MustMoney("3.33", CurrencyUSD).Multiply(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "9.99", tripled.Amount().StringFixed(2))

	_, err = MustMoney("3.33", CurrencyUSD).Multiply(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeFactor)
}

func TestMoney_ApplyDiscount(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		percentage int64
		want       string
		wantErr    error
	}{
		{"no discount leaves price unchanged", "80.00", 0, "80.00", nil},
		{"half price", "80.00", 50, "40.00", nil},
		{"full discount yields zero", "80.00", 100, "0.00", nil},
		{"over one hundred", "80.00", 150, "", ErrInvalidPercentage},
		{"negative", "80.00", -10, "", ErrInvalidPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustMoney(tt.price, CurrencyBRL).ApplyDiscount(decimal.NewFromInt(tt.percentage))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount().StringFixed(2))
		})
	}
}

func TestMoney_ApplyDiscount_Rounds(t *testing.T) {
	// 10.01 * 0.5 = 5.005 which rounds half-up to 5.01.
	got, err := MustMoney("10.01", CurrencyBRL).ApplyDiscount(decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, "5.01", got.Amount().StringFixed(2))
}

func TestMoney_Comparisons(t *testing.T) {
	small := MustMoney("5.00", CurrencyBRL)
	large := MustMoney("10.00", CurrencyBRL)

	less, err := small.LessThan(large)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := large.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, greater)

	_, err = small.LessThan(MustMoney("5.00", CurrencyUSD))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	assert.True(t, small.Equal(MustMoney("5.000", CurrencyBRL)))
	assert.False(t, small.Equal(MustMoney("5.00", CurrencyUSD)))
}

func TestMoney_IsZero(t *testing.T) {
	zero, err := MustMoney("1.00", CurrencyBRL).ApplyDiscount(decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.False(t, MustMoney("0.01", CurrencyBRL).IsZero())
}

func TestMoney_Formatted(t *testing.T) {
	assert.Equal(t, "R$ 1.500,00", MustMoney("1500", CurrencyBRL).Formatted())
	assert.Equal(t, "R$ 1.234,56", MustMoney("1234.56", CurrencyBRL).Formatted())
	assert.Equal(t, "R$ 999,99", MustMoney("999.99", CurrencyBRL).Formatted())
	assert.Equal(t, "R$ 1.234.567,89", MustMoney("1234567.89", CurrencyBRL).Formatted())
	assert.Equal(t, "$ 19.90", MustMoney("19.90", CurrencyUSD).Formatted())
	assert.Equal(t, "$ 2,500.00", MustMoney("2500", CurrencyUSD).Formatted())
	assert.Equal(t, "€ 7.50", MustMoney("7.50", CurrencyEUR).Formatted())
	assert.Equal(t, "€ 10,000.00", MustMoney("10000", CurrencyEUR).Formatted())
}
