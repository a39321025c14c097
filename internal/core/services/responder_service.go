package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
)

// Intent rules, checked in priority order with first match winning. Invoice
// content outranks everything, so "What is the EUR rate?" still routes to
// the invoice path via the whole-word currency code.
var (
	currencySymbolPattern = regexp.MustCompile(`[$€£₹¥]`)
	invoiceKeywordPattern = regexp.MustCompile(`(?i)\b(invoice|total|amount|eur|gbp|usd|inr|jpy|cad)\b`)
)

const helpReply = "Paste invoice text and I'll route it to the right regional pipeline, standardize the amount to USD, verify the vendor and screen for cross-regional duplicates. You can also ask about exchange rates, business benefits or processing statistics."

var fillerReplies = []string{
	"I can help with invoices, exchange rates and processing statistics. Try pasting an invoice!",
	"Not sure I follow. Paste invoice text, or ask about exchange rates, savings or stats.",
	"Try an amount like \"Invoice total: €500\" and I'll standardize it to USD.",
}

// responderService classifies widget messages and produces the reply for
// each intent.
type responderService struct {
	BaseService
	detector    portssvc.DetectorSvc
	analyzer    portssvc.InvoiceAnalyzerSvc
	currency    portssvc.CurrencyReaderSvc
	stats       portssvc.StatsSvc
	chatMetrics *metrics.ChatMetrics

	mu  sync.Mutex
	rng *rand.Rand
}

// ResponderOption is a functional option for configuring the responder
type ResponderOption func(*responderService)

// WithResponderRandomSource pins the source behind filler rotation.
func WithResponderRandomSource(src rand.Source) ResponderOption {
	return func(s *responderService) {
		s.rng = rand.New(src)
	}
}

// WithResponderMetrics counts classified intents in Prometheus.
func WithResponderMetrics(m *metrics.ChatMetrics) ResponderOption {
	return func(s *responderService) {
		s.chatMetrics = m
	}
}

// NewResponderService creates a new responder with the provided options.
func NewResponderService(
	detector portssvc.DetectorSvc,
	analyzer portssvc.InvoiceAnalyzerSvc,
	currency portssvc.CurrencyReaderSvc,
	stats portssvc.StatsSvc,
	options ...ResponderOption,
) portssvc.ResponderSvc {
	svc := &responderService{
		detector: detector,
		analyzer: analyzer,
		currency: currency,
		stats:    stats,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure responderService implements the ResponderSvc interface
var _ portssvc.ResponderSvc = (*responderService)(nil)

// Classify returns the intent for a message, first match winning.
func (s *responderService) Classify(ctx context.Context, message string) domain.Intent {
	lower := strings.ToLower(message)
	switch {
	case currencySymbolPattern.MatchString(message) || invoiceKeywordPattern.MatchString(message):
		return domain.IntentInvoiceContent
	case strings.Contains(lower, "exchange rate") || strings.Contains(lower, "rates"):
		return domain.IntentExchangeRateQuery
	case strings.Contains(lower, "business benefit") || strings.Contains(lower, "savings"):
		return domain.IntentBusinessBenefitQuery
	case strings.Contains(lower, "statistics") || strings.Contains(lower, "stats"):
		return domain.IntentStatisticsQuery
	case strings.Contains(lower, "help"):
		return domain.IntentHelpQuery
	default:
		return domain.IntentDefault
	}
}

// Respond classifies the message and dispatches to the matching generator.
func (s *responderService) Respond(ctx context.Context, message string) (*domain.ChatResponse, error) {
	intent := s.Classify(ctx, message)
	s.LogDebug(ctx, "Classified chat message", slog.String("intent", string(intent)))
	if s.chatMetrics != nil {
		s.chatMetrics.RecordIntent(string(intent))
	}

	switch intent {
	case domain.IntentInvoiceContent:
		return s.respondInvoice(ctx, message)
	case domain.IntentExchangeRateQuery:
		return s.respondRates(ctx)
	case domain.IntentBusinessBenefitQuery:
		return s.respondBenefits(ctx)
	case domain.IntentStatisticsQuery:
		return s.respondStatistics(ctx)
	case domain.IntentHelpQuery:
		return &domain.ChatResponse{Intent: intent, Reply: helpReply}, nil
	default:
		return &domain.ChatResponse{Intent: domain.IntentDefault, Reply: s.pickFiller()}, nil
	}
}

// respondInvoice runs the analysis pipeline over the message. A message with
// invoice keywords but no parsable amount gets a clarifying reply and leaves
// the registry and counters untouched.
func (s *responderService) respondInvoice(ctx context.Context, message string) (*domain.ChatResponse, error) {
	detection := s.detector.DetectCurrencyAndAmount(ctx, message)
	if !detection.Detected() {
		return &domain.ChatResponse{
			Intent: domain.IntentInvoiceContent,
			Reply:  "I could not find a currency amount in that text. Include one like €500 or $1,250.00 and I'll standardize it to USD.",
		}, nil
	}

	analysis, err := s.analyzer.ProcessInvoice(ctx, dto.AnalyzeInvoiceRequest{InvoiceText: message})
	if err != nil {
		s.LogError(ctx, err, "Failed to analyze chat invoice")
		return nil, fmt.Errorf("failed to analyze chat invoice: %w", err)
	}

	var reply strings.Builder
	if analysis.Conversion.Performed {
		fmt.Fprintf(&reply, "Detected %s and standardized it to %s (rate %s).",
			analysis.Conversion.OriginalFormatted, analysis.Conversion.USDFormatted, analysis.Conversion.Rate)
	} else {
		fmt.Fprintf(&reply, "Detected %s, already in USD.", analysis.Conversion.USDFormatted)
	}
	if analysis.Fraud.FraudDetected {
		fmt.Fprintf(&reply, " Warning: %s across %d regions.",
			analysis.Fraud.FraudType, analysis.Fraud.RegionsAffected)
	}
	fmt.Fprintf(&reply, " Recommendation: %s (%s).",
		analysis.Decision.Recommendation, analysis.Decision.Reason)

	return &domain.ChatResponse{
		Intent:     domain.IntentInvoiceContent,
		Reply:      reply.String(),
		Conversion: &analysis.Conversion,
		Analysis:   analysis,
	}, nil
}

func (s *responderService) respondRates(ctx context.Context) (*domain.ChatResponse, error) {
	currencies, err := s.currency.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates for chat reply")
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	parts := make([]string, 0, len(currencies))
	for _, currency := range currencies {
		parts = append(parts, fmt.Sprintf("1 %s = $%s", currency.CurrencyCode, currency.USDRate))
	}

	return &domain.ChatResponse{
		Intent: domain.IntentExchangeRateQuery,
		Reply:  fmt.Sprintf("Current USD exchange rates: %s.", strings.Join(parts, ", ")),
	}, nil
}

func (s *responderService) respondBenefits(ctx context.Context) (*domain.ChatResponse, error) {
	snapshot, err := s.stats.GetStatistics(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load statistics for chat reply")
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	reply := fmt.Sprintf(
		"Automated processing replaces 2-4 hours of manual work per invoice. So far: %d invoices processed, %d duplicate payments prevented and %s saved in blocked fraud.",
		snapshot.InvoicesProcessed, snapshot.DuplicatesPrevented,
		utils.FormatWithCurrencyPrecision(snapshot.TotalSavingsUSD, usdCurrency))

	return &domain.ChatResponse{Intent: domain.IntentBusinessBenefitQuery, Reply: reply}, nil
}

func (s *responderService) respondStatistics(ctx context.Context) (*domain.ChatResponse, error) {
	snapshot, err := s.stats.GetStatistics(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load statistics for chat reply")
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	reply := fmt.Sprintf(
		"Processed %d invoices, detected %d frauds (%.1f%% rate), prevented %d duplicates and saved %s. The registry holds %d invoices across %d regions.",
		snapshot.InvoicesProcessed, snapshot.FraudsDetected, snapshot.FraudDetectionRate,
		snapshot.DuplicatesPrevented,
		utils.FormatWithCurrencyPrecision(snapshot.TotalSavingsUSD, usdCurrency),
		snapshot.RegistrySize, len(snapshot.SupportedRegions))

	return &domain.ChatResponse{Intent: domain.IntentStatisticsQuery, Reply: reply}, nil
}

func (s *responderService) pickFiller() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fillerReplies[s.rng.IntN(len(fillerReplies))]
}
