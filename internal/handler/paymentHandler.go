package handler

import (
	"context"
	"net/http"

	"mbg-project/internal/models"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentProvider is what the payment handlers need from the service layer.
//
//go:generate mockery --name=PaymentProvider --output=./mocks --case=underscore
type PaymentProvider interface {
	CreatePayment(ctx context.Context, p models.Payment) (models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type PaymentHandler struct {
	service PaymentProvider
}

func NewPaymentHandler(s PaymentProvider) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pembayaran not found"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("http.request.customer_id", p.CustomerID))

	created, err := h.service.CreatePayment(ctx, p)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
