package domain

// VendorStatus is the legitimacy classification of an invoice's vendor.
type VendorStatus string

const (
	VendorLegitimate VendorStatus = "LEGITIMATE"
	VendorFraudulent VendorStatus = "FRAUDULENT"
	VendorUnknown    VendorStatus = "UNKNOWN"
)

// RiskLevel grades how much scrutiny a vendor or alert deserves.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// KnownVendor is a registry entry with the name variations accepted for a
// verified supplier.
type KnownVendor struct {
	Name       string    `json:"name"`
	Variations []string  `json:"variations"`
	RiskLevel  RiskLevel `json:"riskLevel"`
}

// VendorVerification is the outcome of vendor legitimacy screening.
type VendorVerification struct {
	VendorName      string       `json:"vendorName"`
	Status          VendorStatus `json:"status"`
	Confidence      float64      `json:"confidence"`
	RiskLevel       RiskLevel    `json:"riskLevel"`
	MatchedVendor   string       `json:"matchedVendor,omitempty"`
	FraudIndicators []string     `json:"fraudIndicators,omitempty"`
}
