package domain

// ChatResponse is the assistant's answer to one widget message: the reply
// text plus whatever structured payload the intent produced.
type ChatResponse struct {
	Intent     Intent            `json:"intent"`
	Reply      string            `json:"reply"`
	Conversion *ConversionResult `json:"conversion,omitempty"`
	Analysis   *InvoiceAnalysis  `json:"analysis,omitempty"`
}
