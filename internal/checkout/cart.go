package checkout

import (
	"fmt"

	"mbg-project/internal/models"
)

// StockWarning is surfaced when a requested quantity was silently clamped
// down to the available stock. The clamp is policy: availability wins over
// exact user intent.
type StockWarning struct {
	ProductName string
	Available   int
}

func (w *StockWarning) String() string {
	return fmt.Sprintf("stok %s hanya tersedia %d", w.ProductName, w.Available)
}

// Cart is the mutable line-item list of an order in progress. The order total
// is recomputed after every mutation and is never settable on its own.
type Cart struct {
	lines []models.LineItem
	total int
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends an empty line: no product, quantity 1, subtotal 0.
func (c *Cart) AddLine() {
	c.lines = append(c.lines, models.LineItem{Quantity: 1})
	c.recompute()
}

// SetProduct selects the product for a line, denormalizing name and price at
// selection time. An unknown product id resolves to zero values without
// error, mirroring the dashboard behavior.
func (c *Cart) SetProduct(cat *Catalog, index int, productID string) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("line %d does not exist", index)
	}

	line := &c.lines[index]
	line.ProductID = productID

	product, ok := cat.Product(productID)
	line.Name = product.Name
	line.Price = product.Price
	_ = ok // silently keep zero values when not found

	line.Subtotal = line.Price * line.Quantity
	c.recompute()
	return nil
}

// SetQuantity sets a line's quantity, floored at 1. When the catalog's stock
// for the selected product is below the request, the quantity is clamped to
// the stock and a warning is returned to the caller.
func (c *Cart) SetQuantity(cat *Catalog, index, quantity int) (*StockWarning, error) {
	if index < 0 || index >= len(c.lines) {
		return nil, fmt.Errorf("line %d does not exist", index)
	}

	if quantity < 1 {
		quantity = 1
	}

	line := &c.lines[index]
	var warning *StockWarning
	if product, ok := cat.Product(line.ProductID); ok && quantity > product.Stock {
		quantity = product.Stock
		warning = &StockWarning{ProductName: product.Name, Available: product.Stock}
	}

	line.Quantity = quantity
	line.Subtotal = line.Price * quantity
	c.recompute()
	return warning, nil
}

// RemoveLine deletes a line item. Confirmation is the caller's business: the
// UI asks before invoking this.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("line %d does not exist", index)
	}

	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	c.recompute()
	return nil
}

// Lines returns a copy of the current line items.
func (c *Cart) Lines() []models.LineItem {
	out := make([]models.LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Total is the current order total, always the sum of line subtotals.
func (c *Cart) Total() int {
	return c.total
}

func (c *Cart) recompute() {
	c.total = models.OrderTotal(c.lines)
}
