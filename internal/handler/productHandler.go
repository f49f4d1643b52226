package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"mbg-project/internal/metric"
	"mbg-project/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CatalogProvider is what the product/customer handlers need from the service
// layer.
//
//go:generate mockery --name=CatalogProvider --output=./mocks --case=underscore
type CatalogProvider interface {
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CatalogHandler struct {
	service CatalogProvider
}

func NewCatalogHandler(s CatalogProvider) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "produk not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateProduct(c.Request.Context(), p)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p.ID = c.Param("id")

	updated, err := h.service.UpdateProduct(c.Request.Context(), p)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// statusForError maps service errors to HTTP statuses: validation problems are
// the client's fault, missing rows are 404, the rest is on us.
func statusForError(err error) int {
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErrs),
		errors.Is(err, models.ErrPaymentBadTotal),
		errors.Is(err, models.ErrPaymentNoCustomer),
		errors.Is(err, models.ErrPaymentNoItems):
		return http.StatusBadRequest
	case errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()
		// handler finished, record latency and status
		duration := time.Since(start)
		status := c.Writer.Status()

		metric.ObserveRequest(duration, status)
	}
}
