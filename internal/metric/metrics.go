package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Kafka: activity events that made it out of (or into) the broker.
	KafkaMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mbg",
		Subsystem: "kafka",
		Name:      "messages_total",
		Help:      "Activity messages processed, by direction and status",
	}, []string{"direction", "status"}) // produce/consume, success/error

	DbOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mbg",
		Subsystem: "db",
		Name:      "operations_total",
		Help:      "Database operation counts by entity and outcome",
	}, []string{"entity", "operation", "status"})

	DbDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mbg",
		Subsystem: "db",
		Name:      "operation_duration_seconds",
		Help:      "Database operation latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"entity", "operation"})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "mbg",
		Subsystem: "cache",
		Name:      "items_count",
		Help:      "Products currently held in the in-memory cache",
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mbg",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Product cache lookups by result",
	}, []string{"result"}) // hit / miss

	PaymentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mbg",
		Subsystem: "payment",
		Name:      "created_total",
		Help:      "Payments accepted by the backend",
	})

	RequestMetrics = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  "mbg",
		Subsystem:  "http",
		Name:       "request",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})
)

func ObserveRequest(t time.Duration, status int) {
	RequestMetrics.WithLabelValues(strconv.Itoa(status)).Observe(t.Seconds())
}
