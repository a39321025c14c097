package services

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// StatsSvc tracks processing counters across the lifetime of the process.
type StatsSvc interface {
	// RecordInvoiceProcessed updates the counters after one pipeline run.
	RecordInvoiceProcessed(ctx context.Context, fraud domain.FraudAssessment)

	// GetStatistics returns a snapshot of the counters together with the
	// registry size and the supported regions and currencies.
	GetStatistics(ctx context.Context) (*domain.ProcessingStats, error)
}
