package services

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency reference data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListRates returns the snapshot USD rate for every supported currency,
	// keyed by currency code.
	ListRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
// The rate table is a fixed snapshot, so there is no writer side.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
