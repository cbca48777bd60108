package entity

import (
	"testing"

	"gsale/internal/domain/valueobject"
	"gsale/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSale(t *testing.T) *Sale {
	t.Helper()

	sale, err := NewSale(uuid.New(), uuid.New(), uuid.New(),
		valueobject.MustMoney("120.00", valueobject.CurrencyBRL))
	require.NoError(t, err)

	return sale
}

func TestNewSale(t *testing.T) {
	t.Run("opens pending", func(t *testing.T) {
		sale := newTestSale(t)
		assert.Equal(t, SaleStatusPending, sale.Status())
		assert.Nil(t, sale.CompletedAt())
	})

	t.Run("buyer equals seller rejected", func(t *testing.T) {
		id := uuid.New()
		_, err := NewSale(uuid.New(), id, id,
			valueobject.MustMoney("120.00", valueobject.CurrencyBRL))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, err := NewSale(uuid.New(), uuid.New(), uuid.New(),
			valueobject.MustMoney("0.00", valueobject.CurrencyBRL))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestSaleComplete(t *testing.T) {
	sale := newTestSale(t)

	require.NoError(t, sale.Complete())
	assert.Equal(t, SaleStatusCompleted, sale.Status())
	require.NotNil(t, sale.CompletedAt())

	// Completed is not pending anymore.
	assert.True(t, errors.Is(sale.Complete(), ErrInvalidTransition))
	assert.True(t, errors.Is(sale.Cancel(), ErrInvalidTransition))

	events := sale.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "SaleCompleted", events[0].EventType())
}

func TestSaleCancel(t *testing.T) {
	sale := newTestSale(t)

	require.NoError(t, sale.Cancel())
	assert.Equal(t, SaleStatusCancelled, sale.Status())

	// Cancelled sales cannot be refunded.
	assert.True(t, errors.Is(sale.Refund(""), ErrInvalidTransition))

	events := sale.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "SaleCancelled", events[0].EventType())
}

func TestSaleRefund(t *testing.T) {
	sale := newTestSale(t)

	// Refund requires settlement first.
	assert.True(t, errors.Is(sale.Refund(""), ErrInvalidTransition))

	require.NoError(t, sale.Complete())
	require.NoError(t, sale.Refund("buyer returned the item"))
	assert.Equal(t, SaleStatusRefunded, sale.Status())
	assert.Equal(t, "buyer returned the item", sale.Notes())

	events := sale.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "SaleRefunded", events[1].EventType())
}
