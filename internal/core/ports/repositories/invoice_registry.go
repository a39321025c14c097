package repositories

import (
	"context"
	"time"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// InvoiceRegistryReader defines read operations over the cross-regional
// invoice registry used for duplicate detection.
type InvoiceRegistryReader interface {
	// ListInvoicesSince returns all recorded invoices submitted at or after
	// the given time.
	ListInvoicesSince(ctx context.Context, since time.Time) ([]domain.RegionalInvoice, error)

	// CountInvoices returns the number of recorded invoices.
	CountInvoices(ctx context.Context) (int, error)
}

// InvoiceRegistryWriter defines write operations over the registry.
type InvoiceRegistryWriter interface {
	// SaveInvoice records an invoice for future duplicate comparisons.
	// Recording an already-recorded invoice ID is an error.
	SaveInvoice(ctx context.Context, invoice domain.RegionalInvoice) error

	// ClearInvoices removes all recorded invoices and returns how many were
	// removed.
	ClearInvoices(ctx context.Context) (int, error)
}

// FraudAlertReader defines read operations over stored fraud alerts.
type FraudAlertReader interface {
	// ListAlerts returns up to limit alerts created strictly before the given
	// time, newest first. A zero time means "from the newest".
	ListAlerts(ctx context.Context, limit int, before time.Time) ([]domain.FraudAlert, error)
}

// FraudAlertWriter defines write operations over stored fraud alerts.
type FraudAlertWriter interface {
	// SaveAlert records a raised fraud alert.
	SaveAlert(ctx context.Context, alert domain.FraudAlert) error

	// ClearAlerts removes all stored alerts and returns how many were removed.
	ClearAlerts(ctx context.Context) (int, error)
}

// InvoiceRegistryFacade combines the registry and alert interfaces.
// This is a facade for clients that need access to all operations.
type InvoiceRegistryFacade interface {
	InvoiceRegistryReader
	InvoiceRegistryWriter
	FraudAlertReader
	FraudAlertWriter
}
