package checkout

import (
	"context"
	"errors"
	"testing"

	"mbg-project/internal/checkout/mocks"
	"mbg-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Refresh_PopulatesAllThree(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("ListProducts", mock.Anything).Return(testProducts(), nil)
	backend.On("ListCustomers", mock.Anything).Return(testCustomers(), nil)
	backend.On("ListPayments", mock.Anything).
		Return([]models.Payment{{ID: "PAY001", CustomerID: "C1", Total: 15000}}, nil)

	catalog := NewCatalog(backend)
	require.NoError(t, catalog.Refresh(context.Background()))

	assert.Len(t, catalog.Products(), 2)
	assert.Len(t, catalog.Customers(), 1)
	assert.Len(t, catalog.Payments(), 1)
}

func TestCatalog_Refresh_PartialFailureKeepsTheRest(t *testing.T) {
	backend := mocks.NewBackend(t)
	cause := errors.New("produk endpoint down")
	backend.On("ListProducts", mock.Anything).Return(nil, cause)
	backend.On("ListCustomers", mock.Anything).Return(testCustomers(), nil)
	backend.On("ListPayments", mock.Anything).Return([]models.Payment{}, nil)

	catalog := NewCatalog(backend)
	err := catalog.Refresh(context.Background())

	require.ErrorIs(t, err, cause)
	assert.Empty(t, catalog.Products())
	assert.Len(t, catalog.Customers(), 1)
}

func TestCatalog_Lookups(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), testCustomers())

	product, ok := catalog.Product("B")
	require.True(t, ok)
	assert.Equal(t, "Roti Bakar", product.Name)

	_, ok = catalog.Product("missing")
	assert.False(t, ok)

	customer, ok := catalog.Customer("C1")
	require.True(t, ok)
	assert.Equal(t, "Budi Santoso", customer.Name)

	_, ok = catalog.Customer("missing")
	assert.False(t, ok)
}
