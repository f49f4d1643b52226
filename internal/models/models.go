// Package models contains the data structures shared across the application
// and used for JSON/DB mapping. JSON field names follow the wire format of the
// original dashboard API (produk/pelanggan/pembayaran).
package models

import (
	"errors"
	"time"
)

// Product is a catalog entry. Stock is decremented by the checkout workflow
// after every completed sale.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"nama_produk" validate:"required"`
	Category    string `json:"kategori" validate:"required"`
	Price       int    `json:"harga" validate:"min=0"`
	Stock       int    `json:"stok" validate:"min=0"`
	Description string `json:"deskripsi"`
}

// Customer holds contact data. Policy: email must use the gmail.com domain and
// the phone number is digits only.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"nama" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email,endswith=@gmail.com"`
	Phone   string `json:"no_hp" validate:"required,numeric"`
	Address string `json:"alamat" validate:"required"`
}

// LineItem is one product-and-quantity entry within a payment. Name and price
// are denormalized at selection time; Subtotal is always Price*Quantity.
type LineItem struct {
	ProductID string `json:"id_produk" validate:"required"`
	Name      string `json:"nama_produk"`
	Price     int    `json:"harga" validate:"min=0"`
	Quantity  int    `json:"jumlah" validate:"min=1"`
	Subtotal  int    `json:"subtotal" validate:"min=0"`
}

// Payment is an active (not yet archived) order. Total always equals the sum
// of line-item subtotals; it is never stored independently of its inputs.
type Payment struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"id_pelanggan" validate:"required"`
	Date       time.Time  `json:"tanggal"`
	Items      []LineItem `json:"produk" validate:"required,gt=0,dive"`
	Total      int        `json:"total_bayar" validate:"min=0"`
}

// StatusCompleted is the only terminal payment status.
const StatusCompleted = "selesai"

// HistoricalPayment is an archived payment snapshot. Created once per archived
// payment, immutable thereafter.
type HistoricalPayment struct {
	Payment
	CustomerName string    `json:"nama_pelanggan"`
	Status       string    `json:"status"`
	CompletedAt  time.Time `json:"tanggal_selesai"`
}

// ActivityEvent is a dashboard feed entry (new payment, new product, ...).
type ActivityEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	Timestamp   time.Time `json:"timestamp"`
}

// Activity event types.
const (
	ActivityTransaction = "transaction"
	ActivityProduct     = "product"
	ActivityCustomer    = "customer"
)

var (
	ErrPaymentNoCustomer = errors.New("payment has no customer reference")
	ErrPaymentNoItems    = errors.New("payment has no line items")
	ErrPaymentBadTotal   = errors.New("payment total does not match line items")
)

// OrderTotal returns the sum of line-item subtotals.
func OrderTotal(items []LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}

// NewPayment builds a payment from its inputs, recomputing every subtotal and
// the total. The ID is left empty; the backend assigns it on creation.
func NewPayment(customerID string, date time.Time, items []LineItem) (Payment, error) {
	if customerID == "" {
		return Payment{}, ErrPaymentNoCustomer
	}
	if len(items) == 0 {
		return Payment{}, ErrPaymentNoItems
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)
	for i := range copied {
		copied[i].Subtotal = copied[i].Price * copied[i].Quantity
	}

	return Payment{
		CustomerID: customerID,
		Date:       date,
		Items:      copied,
		Total:      OrderTotal(copied),
	}, nil
}

// CheckTotal verifies the total-equals-sum-of-subtotals invariant.
func (p Payment) CheckTotal() error {
	for _, it := range p.Items {
		if it.Subtotal != it.Price*it.Quantity {
			return ErrPaymentBadTotal
		}
	}
	if p.Total != OrderTotal(p.Items) {
		return ErrPaymentBadTotal
	}
	return nil
}
