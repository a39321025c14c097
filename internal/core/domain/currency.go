package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency with its static snapshot rate.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "EUR")
	Name         string          `json:"name"`         // e.g., "Euro"
	Symbol       string          `json:"symbol"`       // e.g., "€"
	USDRate      decimal.Decimal `json:"usdRate"`      // Value of 1 unit in USD at snapshot time
	Precision    int             `json:"precision"`    // Display decimal places (JPY uses 0)
	Regions      []string        `json:"regions"`      // Regions that commonly invoice in this currency
}
