package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics covers the exchange execution path.
type ExchangeMetrics struct {
	ExchangesCreatedTotal   *prometheus.CounterVec
	ExchangesCompletedTotal *prometheus.CounterVec
	ExchangesFailedTotal    *prometheus.CounterVec

	ExchangedAmountTotal *prometheus.CounterVec
	FeesCollectedTotal   *prometheus.CounterVec

	ExchangeDuration *prometheus.HistogramVec

	StuckTransactionsFailedTotal prometheus.Counter
}

func NewExchangeMetrics() *ExchangeMetrics {
	return &ExchangeMetrics{
		ExchangesCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_transactions_created_total",
			Help: "Exchange transactions created, by currency pair",
		}, []string{"from_currency", "to_currency"}),

		ExchangesCompletedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_transactions_completed_total",
			Help: "Exchange transactions completed, by currency pair",
		}, []string{"from_currency", "to_currency"}),

		ExchangesFailedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_transactions_failed_total",
			Help: "Exchange transactions failed, by currency pair and reason",
		}, []string{"from_currency", "to_currency", "reason"}),

		ExchangedAmountTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_amount_total",
			Help: "Total exchanged amount in source currency units",
		}, []string{"from_currency", "to_currency"}),

		FeesCollectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_fees_collected_total",
			Help: "Total fees collected, in source currency units",
		}, []string{"currency"}),

		ExchangeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "exchange_execution_duration_seconds",
			Help:    "Exchange execution duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),

		StuckTransactionsFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_stuck_transactions_failed_total",
			Help: "Processing transactions failed by the reconciliation sweep",
		}),
	}
}

func (m *ExchangeMetrics) RecordExchangeCreated(fromCurrency, toCurrency string) {
	m.ExchangesCreatedTotal.WithLabelValues(fromCurrency, toCurrency).Inc()
}

func (m *ExchangeMetrics) RecordExchangeCompleted(fromCurrency, toCurrency string, fromAmount, fee float64, seconds float64) {
	m.ExchangesCompletedTotal.WithLabelValues(fromCurrency, toCurrency).Inc()
	m.ExchangedAmountTotal.WithLabelValues(fromCurrency, toCurrency).Add(fromAmount)
	m.FeesCollectedTotal.WithLabelValues(fromCurrency).Add(fee)
	m.ExchangeDuration.WithLabelValues("completed").Observe(seconds)
}

func (m *ExchangeMetrics) RecordExchangeFailed(fromCurrency, toCurrency, reason string, seconds float64) {
	m.ExchangesFailedTotal.WithLabelValues(fromCurrency, toCurrency, reason).Inc()
	m.ExchangeDuration.WithLabelValues("failed").Observe(seconds)
}

func (m *ExchangeMetrics) RecordStuckTransactionsFailed(count int64) {
	m.StuckTransactionsFailedTotal.Add(float64(count))
}
