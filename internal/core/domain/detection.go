package domain

import "github.com/shopspring/decimal"

// DetectionResult holds the single winning currency match found in free text.
// An empty CurrencyCode means no pattern matched; Amount is zero in that case.
type DetectionResult struct {
	CurrencyCode string          `json:"currencyCode,omitempty"`
	Symbol       string          `json:"symbol,omitempty"`
	RawMatch     string          `json:"rawMatch,omitempty"` // Exact text of the winning match (e.g., "€1,234.56")
	Amount       decimal.Decimal `json:"amount"`
}

// Detected reports whether any currency pattern matched.
func (d DetectionResult) Detected() bool {
	return d.CurrencyCode != ""
}
