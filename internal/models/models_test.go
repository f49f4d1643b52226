package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	date := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("recomputes subtotals and total from inputs", func(t *testing.T) {
		items := []LineItem{
			{ProductID: "A", Price: 5000, Quantity: 3, Subtotal: 1}, // tampered subtotal
			{ProductID: "B", Price: 8000, Quantity: 2, Subtotal: 0},
		}

		p, err := NewPayment("C1", date, items)

		require.NoError(t, err)
		assert.Empty(t, p.ID)
		assert.Equal(t, 15000, p.Items[0].Subtotal)
		assert.Equal(t, 16000, p.Items[1].Subtotal)
		assert.Equal(t, 31000, p.Total)
		// the caller's slice stays untouched
		assert.Equal(t, 1, items[0].Subtotal)
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := NewPayment("", date, []LineItem{{ProductID: "A", Quantity: 1}})
		assert.ErrorIs(t, err, ErrPaymentNoCustomer)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := NewPayment("C1", date, nil)
		assert.ErrorIs(t, err, ErrPaymentNoItems)
	})
}

func TestPayment_CheckTotal(t *testing.T) {
	good := Payment{
		CustomerID: "C1",
		Items: []LineItem{
			{ProductID: "A", Price: 5000, Quantity: 3, Subtotal: 15000},
		},
		Total: 15000,
	}
	assert.NoError(t, good.CheckTotal())

	driftedTotal := good
	driftedTotal.Total = 20000
	assert.ErrorIs(t, driftedTotal.CheckTotal(), ErrPaymentBadTotal)

	driftedSubtotal := good
	driftedSubtotal.Items = []LineItem{
		{ProductID: "A", Price: 5000, Quantity: 3, Subtotal: 14000},
	}
	driftedSubtotal.Total = 14000
	assert.ErrorIs(t, driftedSubtotal.CheckTotal(), ErrPaymentBadTotal)
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, 0, OrderTotal(nil))
	assert.Equal(t, 23000, OrderTotal([]LineItem{
		{Subtotal: 15000},
		{Subtotal: 8000},
	}))
}
