package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mbg-project/internal/logger/sl"
	"mbg-project/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Checkout drives payment submission and archival against the backend.
type Checkout struct {
	backend Backend
	history HistoryStore
	catalog *Catalog
	now     func() time.Time
}

func New(backend Backend, history HistoryStore, catalog *Catalog) *Checkout {
	return &Checkout{
		backend: backend,
		history: history,
		catalog: catalog,
		now:     time.Now,
	}
}

// Submit validates the order and posts it, then decrements each sold
// product's stock with an individual update. The steps are independent
// network calls: when a stock update fails midway the payment stays created
// and the remaining products keep their old stock. The created payment is
// returned even in that case, together with the error.
func (co *Checkout) Submit(ctx context.Context, customerID string, lines []models.LineItem) (models.Payment, error) {
	tr := otel.Tracer("checkout")
	ctx, span := tr.Start(ctx, "Checkout.Submit")
	defer span.End()

	if customerID == "" {
		return models.Payment{}, ErrNoCustomerSelected
	}
	if len(lines) == 0 {
		return models.Payment{}, ErrEmptyOrder
	}
	// authoritative re-check right before the network calls
	if err := Validate(lines, co.catalog); err != nil {
		return models.Payment{}, err
	}

	payment, err := models.NewPayment(customerID, co.now(), lines)
	if err != nil {
		return models.Payment{}, err
	}
	span.SetAttributes(attribute.String("customer_id", customerID), attribute.Int("total", payment.Total))

	created, err := co.backend.CreatePayment(ctx, payment)
	if err != nil {
		return models.Payment{}, fmt.Errorf("creating pembayaran: %w", err)
	}
	span.AddEvent("pembayaran created")

	for _, line := range lines {
		product, ok := co.catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		newStock := product.Stock - line.Quantity
		if newStock < 0 {
			// a stale read must never drive the stock negative
			newStock = 0
		}
		product.Stock = newStock

		if _, err := co.backend.UpdateProduct(ctx, product); err != nil {
			span.RecordError(err)
			return created, fmt.Errorf("updating stok for %s (pembayaran %s already created): %w",
				product.Name, created.ID, err)
		}
		slog.Info("stok updated",
			slog.String("produk", product.Name), slog.Int("stok", newStock), sl.Traced(ctx))
	}

	return created, nil
}

// Archive moves a completed payment into history: denormalize the customer
// name, stamp completion, append to the history store, then delete the active
// record. Neither step is rolled back when the other fails.
func (co *Checkout) Archive(ctx context.Context, payment models.Payment) (models.HistoricalPayment, error) {
	tr := otel.Tracer("checkout")
	ctx, span := tr.Start(ctx, "Checkout.Archive")
	defer span.End()
	span.SetAttributes(attribute.String("payment_id", payment.ID))

	customerName := "N/A"
	if customer, ok := co.catalog.Customer(payment.CustomerID); ok {
		customerName = customer.Name
	}

	record := models.HistoricalPayment{
		Payment:      payment,
		CustomerName: customerName,
		Status:       models.StatusCompleted,
		CompletedAt:  co.now(),
	}

	if err := co.history.Append(ctx, record); err != nil {
		span.RecordError(err)
		return models.HistoricalPayment{}, &ArchiveFailedError{PaymentID: payment.ID, Step: "append", Err: err}
	}

	if err := co.backend.DeletePayment(ctx, payment.ID); err != nil {
		span.RecordError(err)
		return models.HistoricalPayment{}, &ArchiveFailedError{PaymentID: payment.ID, Step: "delete", Err: err}
	}

	return record, nil
}
