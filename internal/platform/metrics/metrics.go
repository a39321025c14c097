package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ChatMetrics holds the Prometheus instruments for the chat and invoice
// processing pipeline. Construct it once per process: the instruments
// register themselves with the default registry.
type ChatMetrics struct {
	MessagesClassifiedTotal   prometheus.CounterVec
	ConversionsTotal          prometheus.CounterVec
	InvoicesProcessedTotal    prometheus.Counter
	FraudAlertsTotal          prometheus.CounterVec
	DuplicatesPreventedTotal  prometheus.Counter
	FraudSavingsUSDTotal      prometheus.Counter
	InvoiceProcessingDuration prometheus.Histogram
}

// NewChatMetrics creates and registers the pipeline metrics.
func NewChatMetrics() *ChatMetrics {
	return &ChatMetrics{
		MessagesClassifiedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_messages_classified_total",
				Help: "Chat messages classified, by resolved intent",
			},
			[]string{"intent"},
		),

		ConversionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "USD conversions served, by source currency and whether a rate multiply ran",
			},
			[]string{"from_currency", "performed"},
		),

		InvoicesProcessedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "invoices_processed_total",
				Help: "Invoices run through the full analysis pipeline",
			},
		),

		FraudAlertsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_alerts_total",
				Help: "Fraud alerts raised, by recommended action tier",
			},
			[]string{"action"},
		),

		DuplicatesPreventedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "duplicates_prevented_total",
				Help: "Cross-regional duplicate submissions caught",
			},
		),

		FraudSavingsUSDTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fraud_savings_usd_total",
				Help: "Potential duplicate payments prevented, in USD",
			},
		),

		InvoiceProcessingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "invoice_processing_duration_seconds",
				Help:    "Wall time of one full pipeline run in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
	}
}

// RecordIntent counts one classified message.
func (m *ChatMetrics) RecordIntent(intent string) {
	m.MessagesClassifiedTotal.WithLabelValues(intent).Inc()
}

// RecordConversion counts one served conversion.
func (m *ChatMetrics) RecordConversion(fromCurrency string, performed bool) {
	performedStr := "false"
	if performed {
		performedStr = "true"
	}
	m.ConversionsTotal.WithLabelValues(fromCurrency, performedStr).Inc()
}

// RecordInvoiceProcessed updates the pipeline counters after one run.
func (m *ChatMetrics) RecordInvoiceProcessed(fraudDetected bool, duplicates int, savingsUSD float64, durationSeconds float64) {
	m.InvoicesProcessedTotal.Inc()
	m.InvoiceProcessingDuration.Observe(durationSeconds)
	if fraudDetected {
		m.DuplicatesPreventedTotal.Add(float64(duplicates))
		m.FraudSavingsUSDTotal.Add(savingsUSD)
	}
}

// RecordFraudAlert counts one raised alert.
func (m *ChatMetrics) RecordFraudAlert(action string) {
	m.FraudAlertsTotal.WithLabelValues(action).Inc()
}
