package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FraudTypeDuplicate is the fraud classification for the same invoice being
// submitted to more than one regional processing center.
const FraudTypeDuplicate = "Multi-Regional Duplicate Attack"

// InvoiceFingerprint is the comparable signature of one invoice's content.
type InvoiceFingerprint struct {
	ContentHash       string            `json:"contentHash"` // md5 of NormalizedContent
	VendorName        string            `json:"vendorName"`
	LineItems         []string          `json:"lineItems"`
	Amounts           []decimal.Decimal `json:"amounts"`
	POReference       string            `json:"poReference"`
	DeliveryAddress   string            `json:"deliveryAddress"`
	NormalizedContent string            `json:"-"` // Kept for comparison, not for serialization
	Keywords          []string          `json:"keywords"`
}

// RegionalInvoice is a fingerprinted invoice recorded for cross-regional
// duplicate comparison.
type RegionalInvoice struct {
	InvoiceID    string             `json:"invoiceID"`
	Region       string             `json:"region"`
	CurrencyCode string             `json:"currencyCode"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	USDAmount    decimal.Decimal    `json:"usdAmount"`
	SubmittedAt  time.Time          `json:"submittedAt"`
	Fingerprint  InvoiceFingerprint `json:"fingerprint"`
}

// DuplicateMatch records one suspected duplicate of the invoice under analysis.
type DuplicateMatch struct {
	InvoiceID          string          `json:"invoiceID"`
	Region             string          `json:"region"`
	Similarity         float64         `json:"similarity"`
	USDAmount          decimal.Decimal `json:"usdAmount"`
	TimeDiffHours      float64         `json:"timeDiffHours"`
	CurrencySuspicious bool            `json:"currencySuspicious"` // USD-normalized amounts within the variance threshold
	TimingSuspicious   bool            `json:"timingSuspicious"`   // Submitted within the detection window
}

// FraudAssessment is the outcome of the cross-regional duplicate scan.
type FraudAssessment struct {
	FraudDetected   bool             `json:"fraudDetected"`
	FraudType       string           `json:"fraudType,omitempty"`
	Confidence      float64          `json:"confidence"`
	Matches         []DuplicateMatch `json:"potentialDuplicates,omitempty"`
	PotentialLoss   decimal.Decimal  `json:"potentialLossUSD"`
	RegionsAffected int              `json:"regionsAffected"`
}

// RecommendedAction is the response tier for a fraud alert.
type RecommendedAction string

const (
	ActionBlockPayments RecommendedAction = "BLOCK_PAYMENTS"
	ActionHoldForReview RecommendedAction = "HOLD_FOR_REVIEW"
	ActionManualReview  RecommendedAction = "MANUAL_REVIEW"
	ActionMonitor       RecommendedAction = "MONITOR"
)

// ActionForConfidence maps a fraud confidence score onto its action tier.
func ActionForConfidence(confidence float64) RecommendedAction {
	switch {
	case confidence > 0.90:
		return ActionBlockPayments
	case confidence > 0.85:
		return ActionHoldForReview
	case confidence > 0.75:
		return ActionManualReview
	default:
		return ActionMonitor
	}
}

// FraudAlert is raised when duplicate confidence crosses the alert threshold.
type FraudAlert struct {
	AlertID         string            `json:"alertID"`
	FraudType       string            `json:"fraudType"`
	Confidence      float64           `json:"confidence"`
	AffectedRegions []string          `json:"affectedRegions"`
	InvoiceIDs      []string          `json:"invoiceIDs"`
	PotentialLoss   decimal.Decimal   `json:"potentialLossUSD"`
	Action          RecommendedAction `json:"recommendedAction"`
	CreatedAt       time.Time         `json:"createdAt"`
}
