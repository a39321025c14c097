package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// DetectRequest carries raw text to scan for currency amounts.
type DetectRequest struct {
	Text string `json:"text" binding:"required"`
}

// DetectionResponse describes the winning currency match, if any.
type DetectionResponse struct {
	Detected     bool            `json:"detected"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
	Symbol       string          `json:"symbol,omitempty"`
	RawMatch     string          `json:"rawMatch,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToDetectionResponse converts a domain.DetectionResult to its DTO.
func ToDetectionResponse(result domain.DetectionResult) DetectionResponse {
	return DetectionResponse{
		Detected:     result.Detected(),
		CurrencyCode: result.CurrencyCode,
		Symbol:       result.Symbol,
		RawMatch:     result.RawMatch,
		Amount:       result.Amount,
	}
}
