package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// ConvertRequest converts an explicit amount without running detection.
// Amount may be zero, so non-negativity is checked in the service layer.
type ConvertRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Amount       decimal.Decimal `json:"amount"`
}

// ConversionResponse is the USD normalization of a detected or submitted amount.
type ConversionResponse struct {
	FromCurrency      string          `json:"fromCurrency"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	Rate              decimal.Decimal `json:"rate"`
	USDAmount         decimal.Decimal `json:"usdAmount"`
	Performed         bool            `json:"conversionPerformed"`
	OriginalFormatted string          `json:"originalFormatted"`
	USDFormatted      string          `json:"usdFormatted"`
	Confidence        int             `json:"confidence"`
	ProcessingSeconds float64         `json:"processingSeconds"`
}

// ToConversionResponse converts a domain.ConversionResult to its DTO.
func ToConversionResponse(result *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		FromCurrency:      result.FromCurrency,
		OriginalAmount:    result.OriginalAmount,
		Rate:              result.Rate,
		USDAmount:         result.USDAmount,
		Performed:         result.Performed,
		OriginalFormatted: result.OriginalFormatted,
		USDFormatted:      result.USDFormatted,
		Confidence:        result.Confidence,
		ProcessingSeconds: result.ProcessingSeconds,
	}
}
