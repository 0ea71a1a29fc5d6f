package services

import (
	"time"

	"expense-tracker-api/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total number of transactions created by kind",
		},
		[]string{"kind"},
	)

	transactionsDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_deleted_total",
			Help: "Total number of transactions deleted by kind",
		},
		[]string{"kind"},
	)

	categoriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "categories_created_total",
			Help: "Total number of categories created",
		},
	)

	reportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_duration_seconds",
			Help:    "Duration of dashboard report computations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)
)

// RecordTransactionCreated increments the created counter for a kind
func RecordTransactionCreated(kind models.TransactionKind) {
	transactionsCreatedTotal.WithLabelValues(string(kind)).Inc()
}

// RecordTransactionDeleted increments the deleted counter for a kind
func RecordTransactionDeleted(kind models.TransactionKind) {
	transactionsDeletedTotal.WithLabelValues(string(kind)).Inc()
}

// RecordCategoryCreated increments the category creation counter
func RecordCategoryCreated() {
	categoriesCreatedTotal.Inc()
}

// ObserveReportDuration records how long a dashboard report took
func ObserveReportDuration(report string, elapsed time.Duration) {
	reportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}
