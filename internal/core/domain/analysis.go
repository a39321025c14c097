package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recommendation is the final verdict of the decision engine.
type Recommendation string

const (
	RecommendationApprove              Recommendation = "APPROVE"
	RecommendationBlock                Recommendation = "BLOCK"
	RecommendationManualReview         Recommendation = "MANUAL_REVIEW"
	RecommendationEnhancedVerification Recommendation = "ENHANCED_VERIFICATION"
	RecommendationInsufficientData     Recommendation = "INSUFFICIENT_DATA"
)

// DecisionFactor is one weighted input to the final decision.
type DecisionFactor struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Decision is the final recommendation with its supporting factors.
type Decision struct {
	Recommendation Recommendation   `json:"recommendation"`
	Reason         string           `json:"reason"`
	Confidence     float64          `json:"confidence"`
	Factors        []DecisionFactor `json:"factors"`
}

// AuditEntry records one pipeline step for the compliance trail.
type AuditEntry struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary"`
}

// BusinessImpact summarizes the measurable benefits of automated processing.
type BusinessImpact struct {
	ProcessingEfficiency    string          `json:"processingEfficiency"`
	GeographicRouting       string          `json:"geographicRouting"`
	CurrencyStandardization string          `json:"currencyStandardization"`
	VendorVerification      string          `json:"vendorVerification"`
	FraudPrevention         string          `json:"fraudPrevention"`
	ComplianceImprovement   string          `json:"complianceImprovement"`
	CostSavingsUSD          decimal.Decimal `json:"costSavingsUSD"`
}

// InvoiceAnalysis is the complete processing result for one invoice, with
// every pipeline stage's outcome and the audit trail that produced it.
type InvoiceAnalysis struct {
	InvoiceID         string             `json:"invoiceID"`
	Routing           RoutingDecision    `json:"geographicRouting"`
	Conversion        ConversionResult   `json:"currencyConversion"`
	Vendor            VendorVerification `json:"vendorVerification"`
	Fraud             FraudAssessment    `json:"fraudDetection"`
	Decision          Decision           `json:"decision"`
	BusinessImpact    BusinessImpact     `json:"businessImpact"`
	AuditTrail        []AuditEntry       `json:"auditTrail"`
	ProcessingSeconds float64            `json:"processingSeconds"`
}
