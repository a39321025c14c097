package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
)

// currencyService serves the static currency reference table.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a new currency service backed by the seed table.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// Ensure currencyService implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// GetCurrencyByCode retrieves a currency by its 3-letter code. Not found is a
// normal outcome here: USD is detectable but deliberately has no table entry.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency by code",
				slog.String("currency_code", currencyCode))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Currency retrieved successfully",
		slog.String("currency_code", currency.CurrencyCode))
	return currency, nil
}

// ListCurrencies retrieves all currencies in the table.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ListRates returns the static USD rate snapshot keyed by currency code.
func (s *currencyService) ListRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(currencies))
	for _, currency := range currencies {
		rates[currency.CurrencyCode] = currency.USDRate
	}
	return rates, nil
}
