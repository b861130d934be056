package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder exposes ledger metrics through the default Prometheus
// registry, served on /metrics.
type PrometheusRecorder struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration prometheus.Histogram
	openAccounts      prometheus.Gauge
	operationAmount   *prometheus.HistogramVec
}

// NewPrometheus creates a recorder registered with the default registry.
// Call at most once per process.
func NewPrometheus() *PrometheusRecorder {
	return &PrometheusRecorder{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		operationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		openAccounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_open_accounts",
				Help: "Current number of open accounts",
			},
		),
		operationAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_amount",
				Help:    "Monetary amount moved per operation in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
	}
}

func (p *PrometheusRecorder) RecordOperation(operation, status string) {
	p.operationsTotal.WithLabelValues(operation, status).Inc()
}

func (p *PrometheusRecorder) RecordDuration(operation string, duration time.Duration) {
	p.operationDuration.Observe(float64(duration.Milliseconds()))
}

func (p *PrometheusRecorder) SetOpenAccounts(count float64) {
	p.openAccounts.Set(count)
}

func (p *PrometheusRecorder) ObserveAmount(operation string, amount float64) {
	p.operationAmount.WithLabelValues(operation).Observe(amount)
}
