package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
)

// seedCurrencies is the static rate sheet. USD is deliberately absent:
// it is the target currency and never converted.
func seedCurrencies() map[string]domain.Currency {
	return map[string]domain.Currency{
		"EUR": {
			CurrencyCode: "EUR",
			Name:         "Euro",
			Symbol:       "€",
			USDRate:      decimal.NewFromFloat(1.18),
			Precision:    2,
			Regions:      []string{"Germany", "France"},
		},
		"GBP": {
			CurrencyCode: "GBP",
			Name:         "British Pound",
			Symbol:       "£",
			USDRate:      decimal.NewFromFloat(1.28),
			Precision:    2,
			Regions:      []string{"United Kingdom"},
		},
		"INR": {
			CurrencyCode: "INR",
			Name:         "Indian Rupee",
			Symbol:       "₹",
			USDRate:      decimal.NewFromFloat(0.012),
			Precision:    2,
			Regions:      []string{"India"},
		},
		"CAD": {
			CurrencyCode: "CAD",
			Name:         "Canadian Dollar",
			Symbol:       "C$",
			USDRate:      decimal.NewFromFloat(0.74),
			Precision:    2,
			Regions:      []string{"Canada"},
		},
		"JPY": {
			CurrencyCode: "JPY",
			Name:         "Japanese Yen",
			Symbol:       "¥",
			USDRate:      decimal.NewFromFloat(0.0067),
			Precision:    0,
			Regions:      []string{"Japan"},
		},
		"AUD": {
			CurrencyCode: "AUD",
			Name:         "Australian Dollar",
			Symbol:       "A$",
			USDRate:      decimal.NewFromFloat(0.66),
			Precision:    2,
			Regions:      []string{"Australia"},
		},
	}
}

// MemoryCurrencyRepository serves the static currency table. The table is
// immutable after construction, so reads need no locking.
type MemoryCurrencyRepository struct {
	currencies map[string]domain.Currency
}

// newMemoryCurrencyRepository creates the repository with the seeded table.
func newMemoryCurrencyRepository() portsrepo.CurrencyRepositoryFacade {
	return &MemoryCurrencyRepository{currencies: seedCurrencies()}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*MemoryCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *MemoryCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := r.currencies[currencyCode]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *MemoryCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := make([]domain.Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		currencies = append(currencies, currency)
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].CurrencyCode < currencies[j].CurrencyCode
	})
	return currencies, nil
}
