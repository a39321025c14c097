package domain

// RegionProfile describes a regional processing center.
type RegionProfile struct {
	Region       string `json:"region"`
	CurrencyCode string `json:"currencyCode"`
	Timezone     string `json:"timezone"`
	Language     string `json:"language"`
}

// RoutingDecision is the outcome of geographic routing analysis: which
// regional pipeline should process the invoice, and why.
type RoutingDecision struct {
	Region           string        `json:"region"`
	Confidence       float64       `json:"confidence"`
	DetectedLanguage string        `json:"detectedLanguage"`
	DetectedCurrency string        `json:"detectedCurrency"`
	Profile          RegionProfile `json:"processingProfile"`
}
