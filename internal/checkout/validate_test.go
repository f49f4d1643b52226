package checkout

import (
	"testing"

	"mbg-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), nil)

	err := Validate([]models.LineItem{
		{ProductID: "A", Quantity: 10},
		{ProductID: "B", Quantity: 4},
	}, catalog)

	assert.NoError(t, err)
}

func TestValidate_IncompleteSelectionReportedFirst(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), nil)

	// line 0 also exceeds stock, but the missing selection on line 1 is
	// checked for every line before any stock comparison happens
	err := Validate([]models.LineItem{
		{ProductID: "A", Quantity: 99},
		{Quantity: 1},
	}, catalog)

	var incomplete *IncompleteSelectionError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 1, incomplete.Index)
	assert.Equal(t, "produk pada baris 2 belum dipilih", err.Error())
}

func TestValidate_InsufficientStock(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), nil)

	err := Validate([]models.LineItem{
		{ProductID: "B", Quantity: 5},
	}, catalog)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "stok Roti Bakar hanya tersedia 4, tidak dapat membeli 5", err.Error())
}

func TestValidate_QuantityEqualToStockPasses(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), nil)

	err := Validate([]models.LineItem{{ProductID: "B", Quantity: 4}}, catalog)

	assert.NoError(t, err)
}

func TestValidate_UnknownProductSkipsStockCheck(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts(), nil)

	err := Validate([]models.LineItem{{ProductID: "ghost", Quantity: 100}}, catalog)

	assert.NoError(t, err)
}
