package memory

import (
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories. Everything the
// service lives on is process-local: the currency table is a static seed and
// the invoice registry survives only until restart.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	currencyRepo := newMemoryCurrencyRepository()
	registryRepo := newMemoryInvoiceRegistry()

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		RegistryRepo: registryRepo,
	}
}
