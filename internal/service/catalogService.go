// Package service contains the business logic of the backend: catalog and
// payment management, validation, and coordination between cache, repository
// and the activity stream.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mbg-project/internal/logger/sl"
	"mbg-project/internal/metric"
	"mbg-project/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductRepository abstracts persistent product storage from the service.
//
//go:generate mockery --name=ProductRepository --output=./mocks --case=underscore
type ProductRepository interface {
	Save(ctx context.Context, p models.Product) error
	Get(ctx context.Context, id string) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository abstracts persistent customer storage.
//
//go:generate mockery --name=CustomerRepository --output=./mocks --case=underscore
type CustomerRepository interface {
	Save(ctx context.Context, c models.Customer) error
	Get(ctx context.Context, id string) (models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, c models.Customer) error
	Delete(ctx context.Context, id string) error
}

// ProductCache is the in-memory product store sitting in front of the DB.
//
//go:generate mockery --name=ProductCache --output=./mocks --case=underscore
type ProductCache interface {
	Set(id string, p *models.Product)
	Get(id string) (*models.Product, bool)
	Delete(id string)
}

// ActivityPublisher pushes dashboard activity events to the stream. Publishing
// is best-effort: failures are logged, never propagated.
//
//go:generate mockery --name=ActivityPublisher --output=./mocks --case=underscore
type ActivityPublisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// CatalogService manages products and customers.
type CatalogService struct {
	products  ProductRepository
	customers CustomerRepository
	cache     ProductCache
	activity  ActivityPublisher
	validate  *validator.Validate
}

func NewCatalogService(products ProductRepository, customers CustomerRepository, cache ProductCache, activity ActivityPublisher) *CatalogService {
	return &CatalogService{
		products:  products,
		customers: customers,
		cache:     cache,
		activity:  activity,
		validate:  validator.New(),
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if err := s.validate.Struct(p); err != nil {
		return models.Product{}, fmt.Errorf("produk validation failed: %w", err)
	}

	p.ID = uuid.NewString()

	start := time.Now()
	if err := s.products.Save(ctx, p); err != nil {
		metric.DbOperationsTotal.WithLabelValues("produk", "save", "error").Inc()
		return models.Product{}, fmt.Errorf("saving produk: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("produk", "save", "success").Inc()
	metric.DbDuration.WithLabelValues("produk", "save").Observe(time.Since(start).Seconds())

	s.cache.Set(p.ID, &p)
	s.publishActivity(ctx, models.ActivityProduct, "Produk Ditambahkan",
		fmt.Sprintf("Produk baru %s telah ditambahkan ke inventory", p.Name))

	return p, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if fromCache, ok := s.cache.Get(id); ok {
		metric.CacheHitsTotal.WithLabelValues("hit").Inc()
		return *fromCache, nil
	}
	metric.CacheHitsTotal.WithLabelValues("miss").Inc()

	found, err := s.products.Get(ctx, id)
	if err != nil {
		metric.DbOperationsTotal.WithLabelValues("produk", "get", "error").Inc()
		return models.Product{}, fmt.Errorf("produk not found: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("produk", "get", "success").Inc()

	s.cache.Set(id, &found)
	return found, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		metric.DbOperationsTotal.WithLabelValues("produk", "list", "error").Inc()
		return nil, fmt.Errorf("listing produk: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("produk", "list", "success").Inc()
	return products, nil
}

// UpdateProduct replaces the whole product row. This is also the stock
// decrement path used by checkout, so the cache entry is invalidated eagerly.
func (s *CatalogService) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if err := s.validate.Struct(p); err != nil {
		return models.Product{}, fmt.Errorf("produk validation failed: %w", err)
	}

	if err := s.products.Update(ctx, p); err != nil {
		metric.DbOperationsTotal.WithLabelValues("produk", "update", "error").Inc()
		return models.Product{}, fmt.Errorf("updating produk: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("produk", "update", "success").Inc()

	s.cache.Delete(p.ID)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		metric.DbOperationsTotal.WithLabelValues("produk", "delete", "error").Inc()
		return fmt.Errorf("deleting produk: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("produk", "delete", "success").Inc()

	s.cache.Delete(id)
	return nil
}

func (s *CatalogService) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := s.validate.Struct(c); err != nil {
		return models.Customer{}, fmt.Errorf("pelanggan validation failed: %w", err)
	}

	c.ID = uuid.NewString()

	if err := s.customers.Save(ctx, c); err != nil {
		metric.DbOperationsTotal.WithLabelValues("pelanggan", "save", "error").Inc()
		return models.Customer{}, fmt.Errorf("saving pelanggan: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pelanggan", "save", "success").Inc()

	s.publishActivity(ctx, models.ActivityCustomer, "Pelanggan Baru",
		fmt.Sprintf("Pelanggan %s telah terdaftar", c.Name))

	return c, nil
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		metric.DbOperationsTotal.WithLabelValues("pelanggan", "list", "error").Inc()
		return nil, fmt.Errorf("listing pelanggan: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pelanggan", "list", "success").Inc()
	return customers, nil
}

func (s *CatalogService) UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := s.validate.Struct(c); err != nil {
		return models.Customer{}, fmt.Errorf("pelanggan validation failed: %w", err)
	}

	if err := s.customers.Update(ctx, c); err != nil {
		metric.DbOperationsTotal.WithLabelValues("pelanggan", "update", "error").Inc()
		return models.Customer{}, fmt.Errorf("updating pelanggan: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pelanggan", "update", "success").Inc()
	return c, nil
}

func (s *CatalogService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		metric.DbOperationsTotal.WithLabelValues("pelanggan", "delete", "error").Inc()
		return fmt.Errorf("deleting pelanggan: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pelanggan", "delete", "success").Inc()
	return nil
}

// ReCache warms the product cache from the database at startup.
func (s *CatalogService) ReCache(ctx context.Context) error {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("warming product cache: %w", err)
	}

	for i := range products {
		s.cache.Set(products[i].ID, &products[i])
	}
	slog.Info("product cache warmed", slog.Int("count", len(products)))
	return nil
}

func (s *CatalogService) publishActivity(ctx context.Context, kind, title, description string) {
	if s.activity == nil {
		return
	}
	event := models.ActivityEvent{
		ID:          uuid.NewString(),
		Type:        kind,
		Title:       title,
		Description: description,
		User:        "Admin",
		Timestamp:   time.Now(),
	}
	if err := s.activity.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish activity event", sl.Err(err), sl.Traced(ctx))
	}
}
