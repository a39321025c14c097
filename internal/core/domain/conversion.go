package domain

import "github.com/shopspring/decimal"

// ConversionResult is the outcome of converting a detected amount to USD.
// Confidence and ProcessingSeconds are synthesized presentation figures drawn
// from a seedable random source; they carry no signal about the conversion.
type ConversionResult struct {
	FromCurrency      string          `json:"fromCurrency"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	Rate              decimal.Decimal `json:"rate"`
	USDAmount         decimal.Decimal `json:"usdAmount"`
	Performed         bool            `json:"conversionPerformed"` // false for USD pass-through
	OriginalFormatted string          `json:"originalFormatted"`   // e.g., "€1,234.56"
	USDFormatted      string          `json:"usdFormatted"`        // e.g., "$1,456.78"
	Confidence        int             `json:"confidence"`          // Integer in [90, 99]
	ProcessingSeconds float64         `json:"processingSeconds"`   // Decimal in [0.5, 2.5)
}
