package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
)

// regionOrder fixes iteration so scoring is deterministic; the earlier region
// wins among equal scores.
var regionOrder = []string{"Germany", "USA", "UK", "India", "France", "Canada"}

var regionProfiles = map[string]domain.RegionProfile{
	"Germany": {Region: "Germany", CurrencyCode: "EUR", Timezone: "CET", Language: "German"},
	"USA":     {Region: "USA", CurrencyCode: "USD", Timezone: "EST/PST", Language: "English"},
	"UK":      {Region: "UK", CurrencyCode: "GBP", Timezone: "GMT", Language: "English"},
	"India":   {Region: "India", CurrencyCode: "INR", Timezone: "IST", Language: "Hindi/English"},
	"France":  {Region: "France", CurrencyCode: "EUR", Timezone: "CET", Language: "French"},
	"Canada":  {Region: "Canada", CurrencyCode: "CAD", Timezone: "EST/PST", Language: "English"},
}

var languageOrder = []string{"German", "English", "Hindi", "French"}

var languageIndicators = map[string][]string{
	"German":  {"Rechnung", "Betrag", "Datum", "USt-IdNr", "MwSt", "Deutschland"},
	"English": {"Invoice", "Amount", "Total", "Payment", "Tax"},
	"Hindi":   {"रुपये", "बिल", "चालान"},
	"French":  {"Facture", "Montant", "TVA", "France"},
}

var locationIndicators = map[string][]string{
	"Germany": {"Deutschland", "München", "Berlin", "Hamburg"},
	"USA":     {"USA", "United States", "California", "New York"},
	"UK":      {"United Kingdom", "London", "Birmingham"},
	"India":   {"India", "Bangalore", "Mumbai", "Delhi"},
	"France":  {"France", "Paris", "Lyon"},
	"Canada":  {"Canada", "Toronto", "Vancouver"},
}

// Vote weights for the three routing signals.
const (
	languageWeight = 0.4
	currencyWeight = 0.3
	locationWeight = 0.3
)

// routingService infers the regional processing center for an invoice.
type routingService struct {
	BaseService
	detector portssvc.DetectorSvc
}

// NewRoutingService creates a new routing service. The detector supplies the
// currency vote.
func NewRoutingService(detector portssvc.DetectorSvc) portssvc.RoutingSvc {
	return &routingService{detector: detector}
}

// Ensure routingService implements the RoutingSvc interface
var _ portssvc.RoutingSvc = (*routingService)(nil)

// RouteInvoice scores every regional center against the invoice text.
// Language indicators vote 0.4, the detected currency 0.3 and location
// indicators 0.3; the best-scoring region wins with the score as confidence.
// When nothing votes the invoice falls back to the USA center at 0.5.
func (s *routingService) RouteInvoice(ctx context.Context, invoiceText string) domain.RoutingDecision {
	lower := strings.ToLower(invoiceText)

	languageScores := make(map[string]int, len(languageOrder))
	for _, language := range languageOrder {
		score := 0
		for _, indicator := range languageIndicators[language] {
			if strings.Contains(lower, strings.ToLower(indicator)) {
				score++
			}
		}
		if score > 0 {
			languageScores[language] = score
		}
	}

	detectedLanguage := "English"
	bestHits := 0
	for _, language := range languageOrder {
		if languageScores[language] > bestHits {
			bestHits = languageScores[language]
			detectedLanguage = language
		}
	}

	// Empty when nothing was detected; no region gets the currency vote then.
	detectedCurrency := s.detector.DetectCurrencyAndAmount(ctx, invoiceText).CurrencyCode

	locationScores := make(map[string]int, len(locationIndicators))
	for region, indicators := range locationIndicators {
		score := 0
		for _, indicator := range indicators {
			if strings.Contains(lower, strings.ToLower(indicator)) {
				score++
			}
		}
		if score > 0 {
			locationScores[region] = score
		}
	}

	bestRegion := ""
	bestScore := 0.0
	for _, region := range regionOrder {
		profile := regionProfiles[region]

		score := 0.0
		if languageMatches(languageScores, profile.Language) {
			score += languageWeight
		}
		if detectedCurrency == profile.CurrencyCode {
			score += currencyWeight
		}
		if locationScores[region] > 0 {
			score += locationWeight
		}

		if bestRegion == "" || score > bestScore {
			bestRegion = region
			bestScore = score
		}
	}

	if bestScore == 0 {
		// No signal voted for any region.
		bestRegion = "USA"
		bestScore = 0.5
	}

	if detectedCurrency == "" {
		detectedCurrency = "USD"
	}

	decision := domain.RoutingDecision{
		Region:           bestRegion,
		Confidence:       bestScore,
		DetectedLanguage: detectedLanguage,
		DetectedCurrency: detectedCurrency,
		Profile:          regionProfiles[bestRegion],
	}

	s.LogDebug(ctx, "Invoice routed",
		slog.String("region", decision.Region),
		slog.Float64("confidence", decision.Confidence),
		slog.String("detected_language", decision.DetectedLanguage),
		slog.String("detected_currency", decision.DetectedCurrency))
	return decision
}

// languageMatches handles profiles accepting more than one language, like
// India's "Hindi/English".
func languageMatches(scores map[string]int, profileLanguage string) bool {
	for _, language := range strings.Split(profileLanguage, "/") {
		if scores[language] > 0 {
			return true
		}
	}
	return false
}

// SupportedRegions lists the configured regional centers.
func (s *routingService) SupportedRegions() []string {
	regions := make([]string, len(regionOrder))
	copy(regions, regionOrder)
	return regions
}
