package domain

import "github.com/shopspring/decimal"

// ProcessingStats is a point-in-time snapshot of the system counters.
type ProcessingStats struct {
	InvoicesProcessed   int64           `json:"invoicesProcessed"`
	FraudsDetected      int64           `json:"fraudsDetected"`
	DuplicatesPrevented int64           `json:"duplicatesPrevented"`
	TotalSavingsUSD     decimal.Decimal `json:"totalSavingsUSD"`
	FraudDetectionRate  float64         `json:"fraudDetectionRate"` // Percentage of processed invoices flagged
	RegistrySize        int             `json:"registrySize"`
	SupportedRegions    []string        `json:"supportedRegions"`
	SupportedCurrencies []string        `json:"supportedCurrencies"`
}
