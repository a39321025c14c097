package repositories

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository
// interfaces. The rate table is a fixed snapshot loaded at startup, so there
// is no writer side.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
