package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
)

// invoiceAnalyzerService chains the pipeline stages over one invoice and
// produces the final decision with its audit trail.
type invoiceAnalyzerService struct {
	BaseService
	routing     portssvc.RoutingSvc
	detector    portssvc.DetectorSvc
	converter   portssvc.ConverterSvc
	vendor      portssvc.VendorVerifierSvc
	fraud       portssvc.FraudDetectorSvc
	stats       portssvc.StatsSvc
	chatMetrics *metrics.ChatMetrics
}

// InvoiceAnalyzerOption is a functional option for configuring the analyzer
type InvoiceAnalyzerOption func(*invoiceAnalyzerService)

// WithAnalyzerMetrics mirrors pipeline outcomes to Prometheus.
func WithAnalyzerMetrics(m *metrics.ChatMetrics) InvoiceAnalyzerOption {
	return func(s *invoiceAnalyzerService) {
		s.chatMetrics = m
	}
}

// NewInvoiceAnalyzerService creates a new invoice analyzer with the provided options.
func NewInvoiceAnalyzerService(
	routing portssvc.RoutingSvc,
	detector portssvc.DetectorSvc,
	converter portssvc.ConverterSvc,
	vendor portssvc.VendorVerifierSvc,
	fraud portssvc.FraudDetectorSvc,
	stats portssvc.StatsSvc,
	options ...InvoiceAnalyzerOption,
) portssvc.InvoiceAnalyzerSvc {
	svc := &invoiceAnalyzerService{
		routing:   routing,
		detector:  detector,
		converter: converter,
		vendor:    vendor,
		fraud:     fraud,
		stats:     stats,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure invoiceAnalyzerService implements the InvoiceAnalyzerSvc interface
var _ portssvc.InvoiceAnalyzerSvc = (*invoiceAnalyzerService)(nil)

// ProcessInvoice runs routing, conversion, vendor verification and fraud
// detection over the invoice text and folds the stage results into a final
// recommendation. A region supplied on the request overrides the routed one
// for the registry record.
func (s *invoiceAnalyzerService) ProcessInvoice(ctx context.Context, req dto.AnalyzeInvoiceRequest) (*domain.InvoiceAnalysis, error) {
	started := time.Now()

	invoiceID := req.InvoiceID
	if invoiceID == "" {
		invoiceID = uuid.NewString()
	}

	trail := make([]domain.AuditEntry, 0, 4)

	routing := s.routing.RouteInvoice(ctx, req.InvoiceText)
	region := routing.Region
	if req.Region != "" {
		region = req.Region
	}
	trail = append(trail, auditEntry("geographic_routing",
		fmt.Sprintf("Routed to %s (confidence %.2f)", routing.Region, routing.Confidence)))

	detection := s.detector.DetectCurrencyAndAmount(ctx, req.InvoiceText)
	conversion := zeroConversionResult()
	conversionSummary := "No currency amount detected"
	if detection.Detected() {
		converted, err := s.converter.ConvertToUSD(ctx, detection)
		if err != nil {
			s.LogError(ctx, err, "Failed to standardize invoice currency",
				slog.String("invoice_id", invoiceID),
				slog.String("currency_code", detection.CurrencyCode))
			return nil, fmt.Errorf("failed to standardize invoice currency: %w", err)
		}
		conversion = converted
		if conversion.Performed {
			conversionSummary = fmt.Sprintf("Converted %s to %s", conversion.OriginalFormatted, conversion.USDFormatted)
		} else {
			conversionSummary = fmt.Sprintf("Already in USD: %s", conversion.USDFormatted)
		}
	}
	trail = append(trail, auditEntry("currency_conversion", conversionSummary))

	vendor := s.vendor.VerifyVendor(ctx, req.InvoiceText)
	trail = append(trail, auditEntry("vendor_verification",
		fmt.Sprintf("Vendor %s: %s (risk %s)", vendor.VendorName, vendor.Status, vendor.RiskLevel)))

	invoice := domain.RegionalInvoice{
		InvoiceID:    invoiceID,
		Region:       region,
		CurrencyCode: conversion.FromCurrency,
		TotalAmount:  conversion.OriginalAmount,
		USDAmount:    conversion.USDAmount,
		SubmittedAt:  time.Now().UTC(),
		Fingerprint:  s.fraud.Fingerprint(req.InvoiceText),
	}
	fraud, err := s.fraud.DetectDuplicates(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to run duplicate detection",
			slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to run duplicate detection: %w", err)
	}
	fraudSummary := "No duplicates found"
	if fraud.FraudDetected {
		fraudSummary = fmt.Sprintf("%s across %d regions (confidence %.2f)",
			fraud.FraudType, fraud.RegionsAffected, fraud.Confidence)
	}
	trail = append(trail, auditEntry("fraud_detection", fraudSummary))

	decision := makeDecision(routing, *conversion, vendor, *fraud)
	processingSeconds := time.Since(started).Seconds()

	s.stats.RecordInvoiceProcessed(ctx, *fraud)
	if s.chatMetrics != nil {
		loss, _ := fraud.PotentialLoss.Float64()
		s.chatMetrics.RecordInvoiceProcessed(fraud.FraudDetected, len(fraud.Matches), loss, processingSeconds)
	}

	s.LogInfo(ctx, "Invoice processed",
		slog.String("invoice_id", invoiceID),
		slog.String("region", region),
		slog.String("recommendation", string(decision.Recommendation)),
		slog.Bool("fraud_detected", fraud.FraudDetected),
		slog.Float64("duration_seconds", processingSeconds))

	return &domain.InvoiceAnalysis{
		InvoiceID:         invoiceID,
		Routing:           routing,
		Conversion:        *conversion,
		Vendor:            vendor,
		Fraud:             *fraud,
		Decision:          decision,
		BusinessImpact:    buildBusinessImpact(routing, vendor, *fraud, processingSeconds),
		AuditTrail:        trail,
		ProcessingSeconds: processingSeconds,
	}, nil
}

// makeDecision folds the stage results into a recommendation. Each factor
// shifts a 0.5 base confidence, clamped to [0.1, 0.99]; hard fraud and
// vendor verdicts override the confidence tiers.
func makeDecision(routing domain.RoutingDecision, conversion domain.ConversionResult, vendor domain.VendorVerification, fraud domain.FraudAssessment) domain.Decision {
	factors := []domain.DecisionFactor{}

	if routing.Confidence > 0.8 {
		factors = append(factors, domain.DecisionFactor{Name: "geographic_high_confidence", Weight: 0.2})
	} else if routing.Confidence > 0.5 {
		factors = append(factors, domain.DecisionFactor{Name: "geographic_medium_confidence", Weight: 0.1})
	}

	if float64(conversion.Confidence)/100 > 0.8 {
		factors = append(factors, domain.DecisionFactor{Name: "currency_high_confidence", Weight: 0.1})
	}

	switch {
	case vendor.Status == domain.VendorLegitimate:
		factors = append(factors, domain.DecisionFactor{Name: "vendor_legitimate", Weight: 0.3})
	case vendor.Status == domain.VendorFraudulent:
		factors = append(factors, domain.DecisionFactor{Name: "vendor_fraudulent", Weight: -0.5})
	case vendor.RiskLevel == domain.RiskCritical:
		factors = append(factors, domain.DecisionFactor{Name: "vendor_critical_risk", Weight: -0.3})
	}

	if fraud.FraudDetected {
		if fraud.Confidence > 0.9 {
			factors = append(factors, domain.DecisionFactor{Name: "fraud_high_confidence", Weight: -0.4})
		} else {
			factors = append(factors, domain.DecisionFactor{Name: "fraud_medium_confidence", Weight: -0.2})
		}
	} else {
		factors = append(factors, domain.DecisionFactor{Name: "no_fraud_detected", Weight: 0.2})
	}

	confidence := 0.5
	for _, factor := range factors {
		confidence += factor.Weight
	}
	confidence = math.Max(0.1, math.Min(0.99, confidence))

	var recommendation domain.Recommendation
	var reason string
	switch {
	case fraud.FraudDetected && fraud.Confidence > 0.85:
		recommendation, reason = domain.RecommendationBlock, "High fraud risk detected"
	case vendor.Status == domain.VendorFraudulent:
		recommendation, reason = domain.RecommendationBlock, "Fraudulent vendor detected"
	case vendor.RiskLevel == domain.RiskCritical:
		recommendation, reason = domain.RecommendationManualReview, "Critical risk requires approval"
	case confidence > 0.8:
		recommendation, reason = domain.RecommendationApprove, "All checks passed"
	case confidence > 0.6:
		recommendation, reason = domain.RecommendationEnhancedVerification, "Additional checks required"
	default:
		recommendation, reason = domain.RecommendationInsufficientData, "Gather more information"
	}

	return domain.Decision{
		Recommendation: recommendation,
		Reason:         reason,
		Confidence:     confidence,
		Factors:        factors,
	}
}

// buildBusinessImpact summarizes what automated processing saved on this
// invoice. Cost savings price the manual effort at $50 per processing second.
func buildBusinessImpact(routing domain.RoutingDecision, vendor domain.VendorVerification, fraud domain.FraudAssessment, processingSeconds float64) domain.BusinessImpact {
	fraudPrevention := "No fraud detected"
	if fraud.FraudDetected {
		fraudPrevention = fmt.Sprintf("Prevented %s potential fraud",
			utils.FormatWithCurrencyPrecision(fraud.PotentialLoss, usdCurrency))
	}

	return domain.BusinessImpact{
		ProcessingEfficiency:    fmt.Sprintf("Processed in %.2f seconds vs 2-4 hours manual", processingSeconds),
		GeographicRouting:       fmt.Sprintf("Routed to %s pipeline automatically", routing.Region),
		CurrencyStandardization: "Standardized to USD for global reporting",
		VendorVerification:      fmt.Sprintf("Vendor risk assessed: %s", vendor.RiskLevel),
		FraudPrevention:         fraudPrevention,
		ComplianceImprovement:   "100% audit trail maintained across all checks",
		CostSavingsUSD:          decimal.NewFromFloat(processingSeconds * 50).Round(2),
	}
}

// zeroConversionResult is the conversion outcome when no currency amount was
// found in the invoice text.
func zeroConversionResult() *domain.ConversionResult {
	return &domain.ConversionResult{
		FromCurrency:      "USD",
		OriginalAmount:    decimal.Zero,
		Rate:              decimal.NewFromInt(1),
		USDAmount:         decimal.Zero,
		OriginalFormatted: "$0.00",
		USDFormatted:      "$0.00",
	}
}

func auditEntry(step, summary string) domain.AuditEntry {
	return domain.AuditEntry{
		Step:      step,
		Timestamp: time.Now().UTC(),
		Summary:   summary,
	}
}
