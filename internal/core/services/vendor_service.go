package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
)

// vendorLinePatterns extract the vendor name from labeled invoice lines, in
// priority order.
var vendorLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)From:[ \t]*([^\n]+)`),
	regexp.MustCompile(`(?i)Vendor:[ \t]*([^\n]+)`),
	regexp.MustCompile(`(?i)Supplier:[ \t]*([^\n]+)`),
	regexp.MustCompile(`(?i)Company:[ \t]*([^\n]+)`),
}

// knownVendors is the registry of verified suppliers with their accepted
// name variations.
var knownVendors = []domain.KnownVendor{
	{
		Name:       "Microsoft",
		Variations: []string{"Microsoft Corporation", "Microsoft India", "Microsoft Deutschland", "Microsoft UK"},
		RiskLevel:  domain.RiskLow,
	},
	{
		Name:       "SAP",
		Variations: []string{"SAP SE", "SAP America", "SAP Labs India", "SAP Deutschland"},
		RiskLevel:  domain.RiskLow,
	},
	{
		Name:       "Amazon",
		Variations: []string{"Amazon.com Inc", "Amazon Web Services", "Amazon India", "Amazon EU"},
		RiskLevel:  domain.RiskLow,
	},
}

// misspellingPatterns catch lookalike spellings of well-known vendors, a
// common invoice fraud tactic.
var misspellingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Mircosoft|Mcirosoft|Microsooft`),
	regexp.MustCompile(`(?i)Gogle|Googel|Gooogle`),
	regexp.MustCompile(`(?i)Amazone|Amazoon|Amzon`),
}

// vendorMatchThreshold is the similarity a vendor name must exceed against a
// registry variation to be considered legitimate.
const vendorMatchThreshold = 0.85

// vendorService screens the vendor named in invoice text.
type vendorService struct {
	BaseService
}

// NewVendorService creates a new vendor verification service.
func NewVendorService() portssvc.VendorVerifierSvc {
	return &vendorService{}
}

// Ensure vendorService implements the VendorVerifierSvc interface
var _ portssvc.VendorVerifierSvc = (*vendorService)(nil)

// VerifyVendor extracts the vendor line and classifies it: a close registry
// match is LEGITIMATE, a misspelling pattern hit is FRAUDULENT, anything
// else stays UNKNOWN at medium risk.
func (s *vendorService) VerifyVendor(ctx context.Context, invoiceText string) domain.VendorVerification {
	vendorName := extractVendorName(invoiceText)
	if vendorName == "" {
		return domain.VendorVerification{
			VendorName: "Not detected",
			Status:     domain.VendorUnknown,
			Confidence: 0.5,
			RiskLevel:  domain.RiskMedium,
		}
	}

	verification := domain.VendorVerification{
		VendorName: vendorName,
		Status:     domain.VendorUnknown,
		Confidence: 0.5,
		RiskLevel:  domain.RiskMedium,
	}

	bestSimilarity := 0.0
	for _, vendor := range knownVendors {
		for _, variation := range vendor.Variations {
			similarity := utils.SimilarityRatio(strings.ToLower(vendorName), strings.ToLower(variation))
			if similarity > vendorMatchThreshold && similarity > bestSimilarity {
				bestSimilarity = similarity
				verification.Status = domain.VendorLegitimate
				verification.Confidence = similarity
				verification.RiskLevel = vendor.RiskLevel
				verification.MatchedVendor = vendor.Name
			}
		}
	}

	// The misspelling screen runs last and overrides a similarity match.
	for _, pattern := range misspellingPatterns {
		if pattern.MatchString(vendorName) {
			verification.Status = domain.VendorFraudulent
			verification.Confidence = 0.95
			verification.RiskLevel = domain.RiskCritical
			verification.FraudIndicators = append(verification.FraudIndicators, "Misspelled legitimate vendor name")
			break
		}
	}

	s.LogDebug(ctx, "Vendor screened",
		slog.String("vendor_name", verification.VendorName),
		slog.String("status", string(verification.Status)),
		slog.String("risk_level", string(verification.RiskLevel)))
	return verification
}

// extractVendorName returns the first labeled vendor line found in the text.
func extractVendorName(invoiceText string) string {
	for _, pattern := range vendorLinePatterns {
		if match := pattern.FindStringSubmatch(invoiceText); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}
