package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCustomerSelected blocks submission when no customer reference is set.
	ErrNoCustomerSelected = errors.New("pelanggan belum dipilih")
	// ErrEmptyOrder blocks submission of an order without line items.
	ErrEmptyOrder = errors.New("belum ada produk dalam daftar")
)

// IncompleteSelectionError means a line item has no product chosen yet.
type IncompleteSelectionError struct {
	Index int
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("produk pada baris %d belum dipilih", e.Index+1)
}

// InsufficientStockError names the offending product and what is actually
// available.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s hanya tersedia %d, tidak dapat membeli %d",
		e.ProductName, e.Available, e.Requested)
}

// ArchiveFailedError reports which step of the archive sequence failed. The
// steps are not rolled back: a failed delete leaves the record both in history
// and in the active list.
type ArchiveFailedError struct {
	PaymentID string
	Step      string // "append" or "delete"
	Err       error
}

func (e *ArchiveFailedError) Error() string {
	return fmt.Sprintf("archiving payment %s failed at %s: %v", e.PaymentID, e.Step, e.Err)
}

func (e *ArchiveFailedError) Unwrap() error {
	return e.Err
}
