package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
)

// MemoryInvoiceRegistry holds recorded invoices and raised alerts for the
// lifetime of the process. All methods are safe for concurrent use.
type MemoryInvoiceRegistry struct {
	mu       sync.RWMutex
	invoices []domain.RegionalInvoice
	alerts   []domain.FraudAlert
}

// newMemoryInvoiceRegistry creates an empty registry.
func newMemoryInvoiceRegistry() portsrepo.InvoiceRegistryFacade {
	return &MemoryInvoiceRegistry{}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRegistryFacade = (*MemoryInvoiceRegistry)(nil)

// SaveInvoice records an invoice for future duplicate comparisons. Invoice
// IDs are unique within the registry.
func (r *MemoryInvoiceRegistry) SaveInvoice(ctx context.Context, invoice domain.RegionalInvoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invoices {
		if existing.InvoiceID == invoice.InvoiceID {
			return fmt.Errorf("%w: invoice with ID %s already recorded", apperrors.ErrDuplicate, invoice.InvoiceID)
		}
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

// ListInvoicesSince returns all invoices submitted at or after the given time.
func (r *MemoryInvoiceRegistry) ListInvoicesSince(ctx context.Context, since time.Time) ([]domain.RegionalInvoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]domain.RegionalInvoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		if !invoice.SubmittedAt.Before(since) {
			matched = append(matched, invoice)
		}
	}
	return matched, nil
}

// CountInvoices returns the number of recorded invoices.
func (r *MemoryInvoiceRegistry) CountInvoices(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices), nil
}

// ClearInvoices removes all recorded invoices.
func (r *MemoryInvoiceRegistry) ClearInvoices(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := len(r.invoices)
	r.invoices = nil
	return cleared, nil
}

// SaveAlert records a raised fraud alert.
func (r *MemoryInvoiceRegistry) SaveAlert(ctx context.Context, alert domain.FraudAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

// ListAlerts returns up to limit alerts created strictly before the given
// time, newest first. A zero before time means "from the newest".
func (r *MemoryInvoiceRegistry) ListAlerts(ctx context.Context, limit int, before time.Time) ([]domain.FraudAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.FraudAlert, 0, len(r.alerts))
	for _, alert := range r.alerts {
		if before.IsZero() || alert.CreatedAt.Before(before) {
			matched = append(matched, alert)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// ClearAlerts removes all stored alerts.
func (r *MemoryInvoiceRegistry) ClearAlerts(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := len(r.alerts)
	r.alerts = nil
	return cleared, nil
}
