package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
)

// symbolRule binds a currency code to the pattern recognizing its
// symbol-prefixed amounts. Every pattern requires at least one digit right
// after the symbol and accepts comma thousands separators; all but the JPY
// rule accept an optional decimal part.
type symbolRule struct {
	currencyCode string
	symbol       string
	pattern      *regexp.Regexp
}

// Rule order matters twice: the literal C$ rule must claim its span before
// the generic $ rule runs, and the earlier rule wins among equal largest
// amounts.
var symbolRules = []symbolRule{
	{"EUR", "€", regexp.MustCompile(`€[0-9][0-9,]*(\.[0-9]+)?`)},
	{"GBP", "£", regexp.MustCompile(`£[0-9][0-9,]*(\.[0-9]+)?`)},
	{"INR", "₹", regexp.MustCompile(`₹[0-9][0-9,]*(\.[0-9]+)?`)},
	{"CAD", "C$", regexp.MustCompile(`C\$[0-9][0-9,]*(\.[0-9]+)?`)},
	{"JPY", "¥", regexp.MustCompile(`¥[0-9][0-9,]*`)},
	{"USD", "$", regexp.MustCompile(`\$[0-9][0-9,]*(\.[0-9]+)?`)},
}

// supportedCurrencyCodes lists the codes the detector can recognize, in rule
// order.
func supportedCurrencyCodes() []string {
	codes := make([]string, len(symbolRules))
	for i, rule := range symbolRules {
		codes[i] = rule.currencyCode
	}
	return codes
}

// detectorService scans free-form text for currency-symbol-prefixed amounts.
// It is stateless and safe for concurrent use.
type detectorService struct {
	BaseService
}

// NewDetectorService creates a new detector service.
func NewDetectorService() portssvc.DetectorSvc {
	return &detectorService{}
}

// Ensure detectorService implements the DetectorSvc interface
var _ portssvc.DetectorSvc = (*detectorService)(nil)

// DetectCurrencyAndAmount finds every non-overlapping symbol-prefixed amount
// across all rules and keeps the single largest one. Invoices list several
// amounts (subtotal, tax, total); the largest is taken to be the grand total.
// A zero-value result means no rule matched.
func (s *detectorService) DetectCurrencyAndAmount(ctx context.Context, text string) domain.DetectionResult {
	var best domain.DetectionResult
	var claimed [][2]int

	for _, rule := range symbolRules {
		for _, span := range rule.pattern.FindAllStringIndex(text, -1) {
			if overlapsClaimed(claimed, span[0], span[1]) {
				continue
			}
			claimed = append(claimed, [2]int{span[0], span[1]})

			raw := text[span[0]:span[1]]
			numeric := strings.ReplaceAll(strings.TrimPrefix(raw, rule.symbol), ",", "")
			amount, err := decimal.NewFromString(numeric)
			if err != nil {
				// Malformed fragments count as amount 0, never abort the scan.
				amount = decimal.Zero
			}

			// Strict > keeps the earliest match among equal maximums.
			if !best.Detected() || amount.GreaterThan(best.Amount) {
				best = domain.DetectionResult{
					CurrencyCode: rule.currencyCode,
					Symbol:       rule.symbol,
					RawMatch:     raw,
					Amount:       amount,
				}
			}
		}
	}

	if best.Detected() {
		s.LogDebug(ctx, "Currency detected",
			slog.String("currency_code", best.CurrencyCode),
			slog.String("amount", best.Amount.String()))
	}
	return best
}

// overlapsClaimed reports whether [start,end) intersects any claimed span.
// Spans claimed by an earlier rule keep later rules (like the generic $ rule
// inside a C$ match) from double-counting the same text.
func overlapsClaimed(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && span[0] < end {
			return true
		}
	}
	return false
}
