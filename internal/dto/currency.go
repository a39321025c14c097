package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a single currency.
type CurrencyResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	USDRate      decimal.Decimal `json:"usdRate"`
	Precision    int             `json:"precision"`
	Regions      []string        `json:"regions"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(currency *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: currency.CurrencyCode,
		Name:         currency.Name,
		Symbol:       currency.Symbol,
		USDRate:      currency.USDRate,
		Precision:    currency.Precision,
		Regions:      currency.Regions,
	}
}

// ListCurrenciesResponse defines the response for listing currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToListCurrenciesResponse converts a slice of domain.Currency to a ListCurrenciesResponse DTO.
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	currencyResponses := make([]CurrencyResponse, 0, len(currencies))
	for i := range currencies {
		currencyResponses = append(currencyResponses, ToCurrencyResponse(&currencies[i]))
	}
	return ListCurrenciesResponse{Currencies: currencyResponses}
}

// RatesResponse is the static USD rate sheet used by the converter.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
