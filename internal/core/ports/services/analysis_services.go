package services

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
)

// RoutingSvc infers which regional processing center should handle an invoice.
type RoutingSvc interface {
	// RouteInvoice scores every region against the invoice text and returns
	// the best match with its processing profile.
	RouteInvoice(ctx context.Context, invoiceText string) domain.RoutingDecision

	// SupportedRegions lists the configured regional centers.
	SupportedRegions() []string
}

// VendorVerifierSvc screens the vendor named in invoice text against the
// known-vendor registry and the misspelling fraud patterns.
type VendorVerifierSvc interface {
	VerifyVendor(ctx context.Context, invoiceText string) domain.VendorVerification
}

// FraudDetectorSvc detects the same invoice being submitted to more than one
// regional processing center.
type FraudDetectorSvc interface {
	// Fingerprint builds the comparable signature for raw invoice text.
	Fingerprint(invoiceText string) domain.InvoiceFingerprint

	// DetectDuplicates scans the registry for cross-regional duplicates of
	// the given invoice. Invoices that do not trigger an alert are recorded
	// for future comparisons; alerting ones produce a stored FraudAlert.
	DetectDuplicates(ctx context.Context, invoice domain.RegionalInvoice) (*domain.FraudAssessment, error)

	// ListAlerts returns stored alerts newest first. nextToken pages through
	// older alerts; an empty returned token means no more pages.
	ListAlerts(ctx context.Context, limit int, nextToken string) ([]domain.FraudAlert, string, error)

	// ResetRegistry clears recorded invoices and alerts, returning the
	// removed counts.
	ResetRegistry(ctx context.Context) (int, int, error)
}

// InvoiceAnalyzerSvc runs the full processing pipeline over one invoice:
// routing, conversion, vendor verification, fraud detection and the final
// decision.
type InvoiceAnalyzerSvc interface {
	ProcessInvoice(ctx context.Context, req dto.AnalyzeInvoiceRequest) (*domain.InvoiceAnalysis, error)
}
