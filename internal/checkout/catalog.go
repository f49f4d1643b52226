// Package checkout implements the cashier workflow: the catalog snapshot,
// the line-item cart, stock validation, payment submission and archival of
// completed payments. It talks to the backend purely over its REST API.
package checkout

import (
	"context"
	"errors"
	"sync"

	"mbg-project/internal/models"
)

// Backend is the slice of the REST API the workflow consumes.
//
//go:generate mockery --name=Backend --output=./mocks --case=underscore
type Backend interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) (models.Product, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p models.Payment) (models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

// HistoryStore is where archived payments go.
//
//go:generate mockery --name=HistoryStore --output=./mocks --case=underscore
type HistoryStore interface {
	Append(ctx context.Context, rec models.HistoricalPayment) error
	List(ctx context.Context) ([]models.HistoricalPayment, error)
}

// Catalog is the in-memory snapshot of products, customers and active
// payments the workflow operates on. It is refreshed explicitly; stock
// figures read from it can be stale the moment another checkout completes.
type Catalog struct {
	backend Backend

	products  []models.Product
	customers []models.Customer
	payments  []models.Payment
}

func NewCatalog(backend Backend) *Catalog {
	return &Catalog{backend: backend}
}

// Refresh fetches products, customers and payments as three concurrent
// requests and waits for all of them to settle. A partial failure keeps the
// successfully fetched slices and reports the joined errors.
func (c *Catalog) Refresh(ctx context.Context) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	fetch := func(load func() error) {
		defer wg.Done()
		if err := load(); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}

	wg.Add(3)
	go fetch(func() error {
		products, err := c.backend.ListProducts(ctx)
		if err != nil {
			return err
		}
		c.products = products
		return nil
	})
	go fetch(func() error {
		customers, err := c.backend.ListCustomers(ctx)
		if err != nil {
			return err
		}
		c.customers = customers
		return nil
	})
	go fetch(func() error {
		payments, err := c.backend.ListPayments(ctx)
		if err != nil {
			return err
		}
		c.payments = payments
		return nil
	})
	wg.Wait()

	return errors.Join(errs...)
}

func (c *Catalog) Products() []models.Product {
	return c.products
}

func (c *Catalog) Customers() []models.Customer {
	return c.customers
}

func (c *Catalog) Payments() []models.Payment {
	return c.payments
}

func (c *Catalog) Product(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Customer(id string) (models.Customer, bool) {
	for _, cust := range c.customers {
		if cust.ID == id {
			return cust, true
		}
	}
	return models.Customer{}, false
}
