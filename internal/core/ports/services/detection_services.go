package services

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// DetectorSvc scans free-form text for currency-symbol-prefixed amounts.
type DetectorSvc interface {
	// DetectCurrencyAndAmount returns the single largest amount matched
	// across all currency rules. It never fails; a zero-value result means
	// no currency was found.
	DetectCurrencyAndAmount(ctx context.Context, text string) domain.DetectionResult
}

// ConverterSvc converts detected amounts to USD using the static rate table.
type ConverterSvc interface {
	// ConvertToUSD converts a detection result to USD. It returns
	// apperrors.ErrNoCurrencyDetected when the detection carries no currency
	// and apperrors.ErrUnsupportedCurrency when no rate exists for the code.
	ConvertToUSD(ctx context.Context, detection domain.DetectionResult) (*domain.ConversionResult, error)
}
