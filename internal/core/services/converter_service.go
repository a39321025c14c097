package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
)

// usdCurrency is the conversion target. It deliberately has no entry in the
// rate table; detected USD amounts pass through at rate 1.
var usdCurrency = domain.Currency{
	CurrencyCode: "USD",
	Name:         "US Dollar",
	Symbol:       "$",
	USDRate:      decimal.NewFromInt(1),
	Precision:    2,
	Regions:      []string{"USA"},
}

// converterService converts detected amounts to USD using the static table.
type converterService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	chatMetrics  *metrics.ChatMetrics

	// rng feeds the synthesized confidence and processing figures. A
	// *rand.Rand is not safe for concurrent use, hence the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// ConverterOption is a functional option for configuring the converter service
type ConverterOption func(*converterService)

// WithConverterRandomSource pins the source behind the synthesized
// confidence and processing-time figures so tests can make them
// deterministic.
func WithConverterRandomSource(src rand.Source) ConverterOption {
	return func(s *converterService) {
		s.rng = rand.New(src)
	}
}

// WithConverterMetrics mirrors served conversions to Prometheus.
func WithConverterMetrics(m *metrics.ChatMetrics) ConverterOption {
	return func(s *converterService) {
		s.chatMetrics = m
	}
}

// NewConverterService creates a new converter service with the provided options.
func NewConverterService(currencyRepo portsrepo.CurrencyReader, options ...ConverterOption) portssvc.ConverterSvc {
	svc := &converterService{
		currencyRepo: currencyRepo,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure converterService implements the ConverterSvc interface
var _ portssvc.ConverterSvc = (*converterService)(nil)

// ConvertToUSD looks up the rate for the detected currency, multiplies, and
// rounds to 2 decimal places half-up. The confidence and processing figures
// it attaches are presentation flavor drawn from the seedable source; they
// carry no signal about the conversion itself.
func (s *converterService) ConvertToUSD(ctx context.Context, detection domain.DetectionResult) (*domain.ConversionResult, error) {
	if !detection.Detected() {
		return nil, apperrors.ErrNoCurrencyDetected
	}
	if detection.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	currency := usdCurrency
	performed := false
	if detection.CurrencyCode != usdCurrency.CurrencyCode {
		found, err := s.currencyRepo.FindCurrencyByCode(ctx, detection.CurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// A detectable code missing from the table must never be
				// multiplied by an undefined rate.
				return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, detection.CurrencyCode)
			}
			s.LogError(ctx, err, "Failed to look up currency rate",
				slog.String("currency_code", detection.CurrencyCode))
			return nil, fmt.Errorf("failed to look up currency %s: %w", detection.CurrencyCode, err)
		}
		currency = *found
		performed = true
	}

	usdAmount := detection.Amount.Mul(currency.USDRate).Round(2)
	confidence, processingSeconds := s.synthesizeFlavor()

	result := &domain.ConversionResult{
		FromCurrency:      currency.CurrencyCode,
		OriginalAmount:    detection.Amount,
		Rate:              currency.USDRate,
		USDAmount:         usdAmount,
		Performed:         performed,
		OriginalFormatted: utils.FormatWithCurrencyPrecision(detection.Amount, currency),
		USDFormatted:      utils.FormatWithCurrencyPrecision(usdAmount, usdCurrency),
		Confidence:        confidence,
		ProcessingSeconds: processingSeconds,
	}

	if s.chatMetrics != nil {
		s.chatMetrics.RecordConversion(result.FromCurrency, result.Performed)
	}

	s.LogDebug(ctx, "Conversion computed",
		slog.String("from_currency", result.FromCurrency),
		slog.String("original_amount", result.OriginalAmount.String()),
		slog.String("usd_amount", result.USDAmount.String()))
	return result, nil
}

// synthesizeFlavor draws a confidence integer in [90,99] and a processing
// time in [0.5,2.5) seconds.
func (s *converterService) synthesizeFlavor() (int, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	confidence := 90 + s.rng.IntN(10)
	processingSeconds := 0.5 + s.rng.Float64()*2.0
	return confidence, processingSeconds
}
