package services

import (
	"context"
	"crypto/md5"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/platform/events"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
	"github.com/fxpilot/invoice_chat_app/internal/utils/pagination"
)

const (
	// duplicateTimeWindow bounds how far apart two submissions can be and
	// still count as the same attack.
	duplicateTimeWindow = 72 * time.Hour

	// similarityThreshold is the weighted fingerprint similarity above which
	// two invoices are duplicate evidence.
	similarityThreshold = 0.85

	// amountVarianceThreshold marks USD-normalized amounts within 10% of
	// each other as suspicious.
	amountVarianceThreshold = 0.1

	// alertThreshold is the confidence above which an alert is raised.
	alertThreshold = 0.75

	// Weights of the fingerprint comparison components.
	contentWeight   = 0.3
	poWeight        = 0.3
	addressWeight   = 0.25
	lineItemsWeight = 0.45

	defaultAlertPageSize = 20
)

// Fingerprint extraction patterns. Labeled lines carry the comparable
// invoice facts; the first matching pattern wins for single-value fields.
var (
	lineItemPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Description:[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)Product:[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)Service:[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)Item:[ \t]*([^\n]+)`),
	}

	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[$€£₹¥]\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`([\d,]+\.?\d*)\s*(?:USD|EUR|GBP|INR|JPY)`),
	}

	poPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Purchase Order[\s#:-]*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)PO Reference[\s#:-]*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)PO[\s#:-]+([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)Reference[\s#:-]*([A-Z0-9-]+)`),
	}

	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Delivery:[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)Ship to:[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)Address:[ \t]*([^\n]+)`),
	}
)

// Normalization patterns strip everything that legitimately differs between
// regional copies of the same invoice (currency, ids, dates, amounts) before
// content comparison.
var (
	normCurrencySymbols = regexp.MustCompile(`[$€£₹¥]`)
	normCurrencyCodes   = regexp.MustCompile(`(?i)\b(USD|EUR|GBP|INR|JPY|CAD)\b`)
	normInvoiceNumbers  = regexp.MustCompile(`(?i)Invoice\s*#?:?\s*[A-Z0-9-]+`)
	normDates           = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
	normAmounts         = regexp.MustCompile(`\d+[,.]?\d*`)
	normWhitespace      = regexp.MustCompile(`\s+`)
)

// Keyword patterns for semantic matching.
var (
	productKeywordPattern = regexp.MustCompile(`(?i)\b(software|license|consultation|equipment|service|support|maintenance|installation)\b`)
	techKeywordPattern    = regexp.MustCompile(`(?i)\b(Microsoft|Office|SAP|Oracle|AWS|Google|Enterprise|Professional|Premium)\b`)
)

// fraudDetectorService detects the same invoice being submitted to more than
// one regional processing center.
type fraudDetectorService struct {
	BaseService
	registryRepo portsrepo.InvoiceRegistryFacade
	publisher    events.AlertPublisher
	chatMetrics  *metrics.ChatMetrics
}

// FraudDetectorOption is a functional option for configuring the fraud detector
type FraudDetectorOption func(*fraudDetectorService)

// WithAlertPublisher routes raised alerts to an event stream.
func WithAlertPublisher(publisher events.AlertPublisher) FraudDetectorOption {
	return func(s *fraudDetectorService) {
		s.publisher = publisher
	}
}

// WithFraudMetrics mirrors raised alerts to Prometheus.
func WithFraudMetrics(m *metrics.ChatMetrics) FraudDetectorOption {
	return func(s *fraudDetectorService) {
		s.chatMetrics = m
	}
}

// NewFraudDetectorService creates a new fraud detector with the provided options.
func NewFraudDetectorService(registryRepo portsrepo.InvoiceRegistryFacade, options ...FraudDetectorOption) portssvc.FraudDetectorSvc {
	svc := &fraudDetectorService{
		registryRepo: registryRepo,
		publisher:    events.NoopAlertPublisher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure fraudDetectorService implements the FraudDetectorSvc interface
var _ portssvc.FraudDetectorSvc = (*fraudDetectorService)(nil)

// Fingerprint builds the comparable signature for raw invoice text.
func (s *fraudDetectorService) Fingerprint(invoiceText string) domain.InvoiceFingerprint {
	lineItems := []string{}
	for _, pattern := range lineItemPatterns {
		for _, match := range pattern.FindAllStringSubmatch(invoiceText, -1) {
			lineItems = append(lineItems, strings.TrimSpace(match[1]))
		}
	}

	amounts := []decimal.Decimal{}
	for _, pattern := range amountPatterns {
		for _, match := range pattern.FindAllStringSubmatch(invoiceText, -1) {
			cleaned := strings.TrimSuffix(strings.ReplaceAll(match[1], ",", ""), ".")
			amount, err := decimal.NewFromString(cleaned)
			if err != nil {
				continue
			}
			amounts = append(amounts, amount)
		}
	}

	normalized := normalizeContent(invoiceText)

	return domain.InvoiceFingerprint{
		ContentHash:       fmt.Sprintf("%x", md5.Sum([]byte(normalized))),
		VendorName:        extractVendorName(invoiceText),
		LineItems:         lineItems,
		Amounts:           amounts,
		POReference:       firstSubmatch(poPatterns, invoiceText),
		DeliveryAddress:   firstSubmatch(addressPatterns, invoiceText),
		NormalizedContent: normalized,
		Keywords:          extractKeywords(invoiceText),
	}
}

// DetectDuplicates scans the registry for cross-regional duplicates of the
// given invoice. Candidates must come from a different region within the
// time window and pass a cheap pre-filter before the weighted comparison
// runs. Invoices that do not trigger an alert are recorded for future
// comparisons; alerting ones produce a stored FraudAlert instead.
func (s *fraudDetectorService) DetectDuplicates(ctx context.Context, invoice domain.RegionalInvoice) (*domain.FraudAssessment, error) {
	since := invoice.SubmittedAt.Add(-duplicateTimeWindow)
	candidates, err := s.registryRepo.ListInvoicesSince(ctx, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan invoice registry",
			slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to scan invoice registry: %w", err)
	}

	matches := []domain.DuplicateMatch{}
	matchedRegions := map[string]struct{}{}
	totalLoss := decimal.Zero
	maxSimilarity := 0.0
	suspiciousCurrency := 0
	suspiciousTiming := 0

	for _, existing := range candidates {
		if existing.Region == invoice.Region {
			continue
		}
		timeDiff := invoice.SubmittedAt.Sub(existing.SubmittedAt).Abs()
		if timeDiff > duplicateTimeWindow {
			continue
		}
		if !quickSimilarityCheck(invoice.Fingerprint, existing.Fingerprint) {
			continue
		}

		similarity := compareFingerprints(invoice.Fingerprint, existing.Fingerprint)
		if similarity <= similarityThreshold {
			continue
		}

		currencySuspicious := amountVariance(invoice.USDAmount, existing.USDAmount) < amountVarianceThreshold
		timingSuspicious := timeDiff < duplicateTimeWindow

		matches = append(matches, domain.DuplicateMatch{
			InvoiceID:          existing.InvoiceID,
			Region:             existing.Region,
			Similarity:         similarity,
			USDAmount:          existing.USDAmount,
			TimeDiffHours:      timeDiff.Hours(),
			CurrencySuspicious: currencySuspicious,
			TimingSuspicious:   timingSuspicious,
		})
		matchedRegions[existing.Region] = struct{}{}
		totalLoss = totalLoss.Add(existing.USDAmount)
		if similarity > maxSimilarity {
			maxSimilarity = similarity
		}
		if currencySuspicious {
			suspiciousCurrency++
		}
		if timingSuspicious {
			suspiciousTiming++
		}
	}

	assessment := &domain.FraudAssessment{
		PotentialLoss:   decimal.Zero,
		RegionsAffected: 1,
	}
	if len(matches) > 0 {
		confidence := maxSimilarity * math.Min(1.5, 1.0+float64(len(matches)-1)*0.2)
		confidence += 0.1 * float64(suspiciousCurrency)
		confidence += 0.05 * float64(suspiciousTiming)
		confidence = math.Min(0.99, confidence)

		assessment = &domain.FraudAssessment{
			FraudDetected:   true,
			FraudType:       domain.FraudTypeDuplicate,
			Confidence:      confidence,
			Matches:         matches,
			PotentialLoss:   totalLoss.Round(2),
			RegionsAffected: len(matchedRegions) + 1,
		}
	}

	if assessment.FraudDetected && assessment.Confidence > alertThreshold {
		alert := buildFraudAlert(invoice, assessment)
		if err := s.registryRepo.SaveAlert(ctx, alert); err != nil {
			s.LogError(ctx, err, "Failed to store fraud alert",
				slog.String("alert_id", alert.AlertID))
			return nil, fmt.Errorf("failed to store fraud alert: %w", err)
		}
		if err := s.publisher.PublishAlert(ctx, alert); err != nil {
			// Publishing is best effort; the stored alert is authoritative.
			s.LogError(ctx, err, "Failed to publish fraud alert",
				slog.String("alert_id", alert.AlertID))
		}
		if s.chatMetrics != nil {
			s.chatMetrics.RecordFraudAlert(string(alert.Action))
		}
		s.LogInfo(ctx, "Fraud alert raised",
			slog.String("alert_id", alert.AlertID),
			slog.String("invoice_id", invoice.InvoiceID),
			slog.Float64("confidence", assessment.Confidence),
			slog.Int("duplicates", len(matches)))
	} else {
		if err := s.registryRepo.SaveInvoice(ctx, invoice); err != nil {
			s.LogError(ctx, err, "Failed to record invoice",
				slog.String("invoice_id", invoice.InvoiceID))
			return nil, fmt.Errorf("failed to record invoice: %w", err)
		}
	}

	return assessment, nil
}

// ListAlerts returns stored alerts newest first, paging with an opaque
// date-based token.
func (s *fraudDetectorService) ListAlerts(ctx context.Context, limit int, nextToken string) ([]domain.FraudAlert, string, error) {
	if limit <= 0 {
		limit = defaultAlertPageSize
	}

	before := time.Time{}
	if nextToken != "" {
		decoded, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid next token", apperrors.ErrValidation)
		}
		before = decoded
	}

	alerts, err := s.registryRepo.ListAlerts(ctx, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fraud alerts")
		return nil, "", fmt.Errorf("failed to list fraud alerts: %w", err)
	}

	next := ""
	if len(alerts) > limit {
		alerts = alerts[:limit]
		next = pagination.EncodeDateBasedToken(alerts[len(alerts)-1].CreatedAt)
	}
	return alerts, next, nil
}

// ResetRegistry clears recorded invoices and alerts.
func (s *fraudDetectorService) ResetRegistry(ctx context.Context) (int, int, error) {
	invoicesCleared, err := s.registryRepo.ClearInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear invoice registry")
		return 0, 0, fmt.Errorf("failed to clear invoice registry: %w", err)
	}

	alertsCleared, err := s.registryRepo.ClearAlerts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear fraud alerts")
		return invoicesCleared, 0, fmt.Errorf("failed to clear fraud alerts: %w", err)
	}

	s.LogInfo(ctx, "Invoice registry reset",
		slog.Int("invoices_cleared", invoicesCleared),
		slog.Int("alerts_cleared", alertsCleared))
	return invoicesCleared, alertsCleared, nil
}

// buildFraudAlert assembles the alert record for an assessment that crossed
// the alert threshold.
func buildFraudAlert(invoice domain.RegionalInvoice, assessment *domain.FraudAssessment) domain.FraudAlert {
	now := time.Now().UTC()

	affectedRegions := []string{invoice.Region}
	seenRegions := map[string]struct{}{invoice.Region: {}}
	invoiceIDs := []string{invoice.InvoiceID}
	for _, match := range assessment.Matches {
		invoiceIDs = append(invoiceIDs, match.InvoiceID)
		if _, ok := seenRegions[match.Region]; !ok {
			seenRegions[match.Region] = struct{}{}
			affectedRegions = append(affectedRegions, match.Region)
		}
	}

	return domain.FraudAlert{
		AlertID:         fmt.Sprintf("FRAUD-%s-%s", now.Format("20060102-150405"), invoice.Region),
		FraudType:       assessment.FraudType,
		Confidence:      assessment.Confidence,
		AffectedRegions: affectedRegions,
		InvoiceIDs:      invoiceIDs,
		PotentialLoss:   assessment.PotentialLoss,
		Action:          domain.ActionForConfidence(assessment.Confidence),
		CreatedAt:       now,
	}
}

// quickSimilarityCheck is the cheap pre-filter: an identical PO reference, a
// close vendor name, or a contained delivery address marks the pair worth a
// full comparison.
func quickSimilarityCheck(a, b domain.InvoiceFingerprint) bool {
	if a.POReference != "" && b.POReference != "" && strings.EqualFold(a.POReference, b.POReference) {
		return true
	}
	if a.VendorName != "" && b.VendorName != "" &&
		utils.SimilarityRatio(strings.ToLower(a.VendorName), strings.ToLower(b.VendorName)) > 0.8 {
		return true
	}
	if a.DeliveryAddress != "" && b.DeliveryAddress != "" &&
		strings.Contains(strings.ToLower(b.DeliveryAddress), strings.ToLower(a.DeliveryAddress)) {
		return true
	}
	return false
}

// compareFingerprints computes the weighted similarity of two fingerprints.
func compareFingerprints(a, b domain.InvoiceFingerprint) float64 {
	contentSimilarity := utils.SimilarityRatio(a.NormalizedContent, b.NormalizedContent)

	poMatch := 0.0
	if a.POReference != "" && b.POReference != "" && strings.EqualFold(a.POReference, b.POReference) {
		poMatch = 1.0
	}

	addressSimilarity := 0.0
	if a.DeliveryAddress != "" && b.DeliveryAddress != "" {
		addressSimilarity = utils.SimilarityRatio(strings.ToLower(a.DeliveryAddress), strings.ToLower(b.DeliveryAddress))
	}

	return contentSimilarity*contentWeight +
		poMatch*poWeight +
		addressSimilarity*addressWeight +
		lineItemsSimilarity(a.LineItems, b.LineItems)*lineItemsWeight
}

// lineItemsSimilarity averages the pairwise similarity over the cross
// product of the two item lists.
func lineItemsSimilarity(items1, items2 []string) float64 {
	if len(items1) == 0 || len(items2) == 0 {
		return 0.0
	}

	total := 0.0
	comparisons := 0
	for _, item1 := range items1 {
		for _, item2 := range items2 {
			total += utils.SimilarityRatio(strings.ToLower(item1), strings.ToLower(item2))
			comparisons++
		}
	}
	return total / float64(comparisons)
}

// amountVariance is the relative difference of two USD amounts against the
// first. A zero base means full variance.
func amountVariance(a, b decimal.Decimal) float64 {
	if a.IsZero() {
		return 1.0
	}
	variance, _ := a.Sub(b).Abs().Div(a).Float64()
	return variance
}

// normalizeContent strips region-variable facts so the structural content of
// two copies compares equal.
func normalizeContent(invoiceText string) string {
	normalized := normCurrencySymbols.ReplaceAllString(invoiceText, "CURRENCY")
	normalized = normCurrencyCodes.ReplaceAllString(normalized, "CURRENCY")
	normalized = normInvoiceNumbers.ReplaceAllString(normalized, "INVOICE_NUMBER")
	normalized = normDates.ReplaceAllString(normalized, "DATE")
	normalized = normAmounts.ReplaceAllString(normalized, "AMOUNT")
	normalized = normWhitespace.ReplaceAllString(strings.TrimSpace(normalized), " ")
	return strings.ToLower(normalized)
}

// extractKeywords collects deduplicated product and technology terms.
func extractKeywords(invoiceText string) []string {
	seen := map[string]struct{}{}
	keywords := []string{}
	for _, pattern := range []*regexp.Regexp{productKeywordPattern, techKeywordPattern} {
		for _, match := range pattern.FindAllString(invoiceText, -1) {
			keyword := strings.ToLower(match)
			if _, ok := seen[keyword]; ok {
				continue
			}
			seen[keyword] = struct{}{}
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// firstSubmatch returns the trimmed first capture of the first matching
// pattern.
func firstSubmatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}
