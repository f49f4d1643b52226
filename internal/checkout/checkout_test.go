package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"mbg-project/internal/checkout/mocks"
	"mbg-project/internal/history"
	"mbg-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCustomers() []models.Customer {
	return []models.Customer{
		{ID: "C1", Name: "Budi Santoso", Email: "budi@gmail.com", Phone: "081234567890", Address: "Jl. Merdeka 1"},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func newTestCheckout(t *testing.T) (*Checkout, *mocks.Backend, *mocks.HistoryStore) {
	t.Helper()
	catalog, backend := newTestCatalog(t, testProducts(), testCustomers())
	store := mocks.NewHistoryStore(t)
	co := New(backend, store, catalog)
	co.now = fixedNow
	return co, backend, store
}

func TestSubmit_NoCustomerSelected(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	_, err := co.Submit(context.Background(), "", []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 1, Subtotal: 5000},
	})

	require.ErrorIs(t, err, ErrNoCustomerSelected)
	backend.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
}

func TestSubmit_EmptyOrder(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	_, err := co.Submit(context.Background(), "C1", nil)

	require.ErrorIs(t, err, ErrEmptyOrder)
	backend.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestSubmit_IncompleteSelection(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	_, err := co.Submit(context.Background(), "C1", []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 1, Subtotal: 5000},
		{Quantity: 1},
	})

	var incomplete *IncompleteSelectionError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 1, incomplete.Index)
	backend.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestSubmit_InsufficientStock(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	// B has 4 in stock
	_, err := co.Submit(context.Background(), "C1", []models.LineItem{
		{ProductID: "B", Name: "Roti Bakar", Price: 8000, Quantity: 5, Subtotal: 40000},
	})

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Roti Bakar", insufficient.ProductName)
	assert.Equal(t, 4, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)
	backend.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
}

func TestSubmit_CreatesPaymentAndDecrementsStock(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	lines := []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 3, Subtotal: 15000},
	}

	backend.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
		return p.CustomerID == "C1" && p.Total == 15000 && len(p.Items) == 1
	})).Return(models.Payment{
		ID:         "PAY001",
		CustomerID: "C1",
		Date:       fixedNow(),
		Items:      lines,
		Total:      15000,
	}, nil)

	backend.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == "A" && p.Stock == 7
	})).Return(models.Product{}, nil)

	created, err := co.Submit(context.Background(), "C1", lines)

	require.NoError(t, err)
	assert.Equal(t, "PAY001", created.ID)
	assert.Equal(t, 15000, created.Total)
}

func TestSubmit_StockUpdateFailureKeepsPayment(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	lines := []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 2, Subtotal: 10000},
		{ProductID: "B", Name: "Roti Bakar", Price: 8000, Quantity: 1, Subtotal: 8000},
	}

	backend.On("CreatePayment", mock.Anything, mock.Anything).
		Return(models.Payment{ID: "PAY002", CustomerID: "C1", Items: lines, Total: 18000}, nil)
	backend.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == "A"
	})).Return(models.Product{}, nil)
	backend.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == "B"
	})).Return(models.Product{}, errors.New("connection reset"))

	created, err := co.Submit(context.Background(), "C1", lines)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAY002")
	// the payment exists even though B kept its old stock
	assert.Equal(t, "PAY002", created.ID)
}

// Two checkouts submitted from the same catalog snapshot both compute the new
// stock from the stale figure, so the second write overwrites the first: after
// two sales of 3 the recorded stock is 7, not 4. The workflow has no
// read-modify-write protection on stock; this test pins that behavior down.
func TestSubmit_StaleSnapshotOverwritesStock(t *testing.T) {
	co, backend, _ := newTestCheckout(t)

	lines := []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 3, Subtotal: 15000},
	}

	backend.On("CreatePayment", mock.Anything, mock.Anything).
		Return(models.Payment{ID: "PAY003", Total: 15000}, nil).Twice()

	var writtenStocks []int
	backend.On("UpdateProduct", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			writtenStocks = append(writtenStocks, args.Get(1).(models.Product).Stock)
		}).
		Return(models.Product{}, nil).Twice()

	_, err := co.Submit(context.Background(), "C1", lines)
	require.NoError(t, err)
	_, err = co.Submit(context.Background(), "C1", lines)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 7}, writtenStocks)
}

func TestSubmit_StaleSnapshotNeverDrivesStockNegative(t *testing.T) {
	catalog, backend := newTestCatalog(t, []models.Product{
		{ID: "A", Name: "Kopi Susu", Price: 5000, Stock: 2},
	}, testCustomers())
	co := New(backend, mocks.NewHistoryStore(t), catalog)
	co.now = fixedNow

	lines := []models.LineItem{
		{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 2, Subtotal: 10000},
	}
	backend.On("CreatePayment", mock.Anything, mock.Anything).
		Return(models.Payment{ID: "PAY004", Total: 10000}, nil).Twice()
	backend.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.Stock == 0
	})).Return(models.Product{}, nil).Twice()

	_, err := co.Submit(context.Background(), "C1", lines)
	require.NoError(t, err)
	_, err = co.Submit(context.Background(), "C1", lines)
	require.NoError(t, err)
}

func TestArchive_AppendsThenDeletes(t *testing.T) {
	catalog, backend := newTestCatalog(t, testProducts(), testCustomers())
	store := history.NewMemStore()
	co := New(backend, store, catalog)
	co.now = fixedNow

	payment := models.Payment{
		ID:         "PAY010",
		CustomerID: "C1",
		Date:       fixedNow().Add(-time.Hour),
		Items: []models.LineItem{
			{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 3, Subtotal: 15000},
		},
		Total: 15000,
	}

	backend.On("DeletePayment", mock.Anything, "PAY010").Return(nil)

	record, err := co.Archive(context.Background(), payment)

	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", record.CustomerName)
	assert.Equal(t, models.StatusCompleted, record.Status)
	assert.Equal(t, fixedNow(), record.CompletedAt)
	assert.Equal(t, payment.Date, record.Date)

	archived, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "PAY010", archived[0].ID)
	assert.Equal(t, 15000, archived[0].Total)
	assert.Equal(t, payment.Items, archived[0].Items)
}

func TestArchive_UnknownCustomerFallsBackToNA(t *testing.T) {
	co, backend, store := newTestCheckout(t)

	store.On("Append", mock.Anything, mock.MatchedBy(func(rec models.HistoricalPayment) bool {
		return rec.CustomerName == "N/A"
	})).Return(nil)
	backend.On("DeletePayment", mock.Anything, "PAY011").Return(nil)

	record, err := co.Archive(context.Background(), models.Payment{ID: "PAY011", CustomerID: "gone"})

	require.NoError(t, err)
	assert.Equal(t, "N/A", record.CustomerName)
}

func TestArchive_AppendFailureSkipsDelete(t *testing.T) {
	co, backend, store := newTestCheckout(t)

	cause := errors.New("redis down")
	store.On("Append", mock.Anything, mock.Anything).Return(cause)

	_, err := co.Archive(context.Background(), models.Payment{ID: "PAY012", CustomerID: "C1"})

	var archiveErr *ArchiveFailedError
	require.ErrorAs(t, err, &archiveErr)
	assert.Equal(t, "append", archiveErr.Step)
	assert.Equal(t, "PAY012", archiveErr.PaymentID)
	require.ErrorIs(t, err, cause)
	backend.AssertNotCalled(t, "DeletePayment", mock.Anything, mock.Anything)
}

func TestArchive_DeleteFailureLeavesHistoryEntry(t *testing.T) {
	catalog, backend := newTestCatalog(t, testProducts(), testCustomers())
	store := history.NewMemStore()
	co := New(backend, store, catalog)
	co.now = fixedNow

	backend.On("DeletePayment", mock.Anything, "PAY013").Return(errors.New("boom"))

	_, err := co.Archive(context.Background(), models.Payment{ID: "PAY013", CustomerID: "C1"})

	var archiveErr *ArchiveFailedError
	require.ErrorAs(t, err, &archiveErr)
	assert.Equal(t, "delete", archiveErr.Step)

	// the append is not rolled back
	archived, listErr := store.List(context.Background())
	require.NoError(t, listErr)
	require.Len(t, archived, 1)
	assert.Equal(t, "PAY013", archived[0].ID)
}
