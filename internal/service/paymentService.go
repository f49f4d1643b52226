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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// PaymentRepository abstracts persistent payment storage.
//
//go:generate mockery --name=PaymentRepository --output=./mocks --case=underscore
type PaymentRepository interface {
	Save(ctx context.Context, p models.Payment) error
	Get(ctx context.Context, id string) (models.Payment, error)
	GetAll(ctx context.Context) ([]models.Payment, error)
	Delete(ctx context.Context, id string) error
}

// PaymentService accepts, lists and deletes active payments.
type PaymentService struct {
	repo     PaymentRepository
	activity ActivityPublisher
	validate *validator.Validate
}

func NewPaymentService(repo PaymentRepository, activity ActivityPublisher) *PaymentService {
	return &PaymentService{
		repo:     repo,
		activity: activity,
		validate: validator.New(),
	}
}

// CreatePayment validates the submitted order, assigns the server-side ID and
// stores it. The total is re-checked against the line items so a client can
// never store a payment whose total drifted from its inputs.
func (s *PaymentService) CreatePayment(ctx context.Context, p models.Payment) (models.Payment, error) {
	tr := otel.Tracer("paymentService")
	ctx, span := tr.Start(ctx, "Service.CreatePayment")
	defer span.End()

	if err := s.validate.Struct(p); err != nil {
		return models.Payment{}, fmt.Errorf("pembayaran validation failed: %w", err)
	}
	if err := p.CheckTotal(); err != nil {
		return models.Payment{}, fmt.Errorf("pembayaran validation failed: %w", err)
	}

	p.ID = uuid.NewString()
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	span.SetAttributes(attribute.String("payment_id", p.ID))

	start := time.Now()
	if err := s.repo.Save(ctx, p); err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("pembayaran", "save", "error").Inc()
		return models.Payment{}, fmt.Errorf("saving pembayaran: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pembayaran", "save", "success").Inc()
	metric.DbDuration.WithLabelValues("pembayaran", "save").Observe(time.Since(start).Seconds())
	metric.PaymentsCreatedTotal.Inc()
	span.AddEvent("pembayaran stored")

	s.publishActivity(ctx, models.ActivityTransaction, "Pembayaran Baru",
		fmt.Sprintf("Pembayaran %s dari pelanggan %s, total %d", p.ID, p.CustomerID, p.Total))

	return p, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	found, err := s.repo.Get(ctx, id)
	if err != nil {
		metric.DbOperationsTotal.WithLabelValues("pembayaran", "get", "error").Inc()
		return models.Payment{}, fmt.Errorf("pembayaran not found: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pembayaran", "get", "success").Inc()
	return found, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		metric.DbOperationsTotal.WithLabelValues("pembayaran", "list", "error").Inc()
		return nil, fmt.Errorf("listing pembayaran: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pembayaran", "list", "success").Inc()
	return payments, nil
}

// DeletePayment removes an active payment, either because it was abandoned or
// because the archiver moved it to history.
func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	tr := otel.Tracer("paymentService")
	ctx, span := tr.Start(ctx, "Service.DeletePayment")
	defer span.End()
	span.SetAttributes(attribute.String("payment_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("pembayaran", "delete", "error").Inc()
		return fmt.Errorf("deleting pembayaran: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("pembayaran", "delete", "success").Inc()

	s.publishActivity(ctx, models.ActivityTransaction, "Pembayaran Dihapus",
		fmt.Sprintf("Pembayaran %s dihapus dari daftar aktif", id))
	return nil
}

func (s *PaymentService) publishActivity(ctx context.Context, kind, title, description string) {
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
		// best effort, the payment operation itself already succeeded
		slog.Warn("failed to publish activity event", sl.Err(err), sl.Traced(ctx))
	}
}
