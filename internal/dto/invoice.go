package dto

// AnalyzeInvoiceRequest carries one invoice for the full processing pipeline.
// InvoiceID and Region are optional; the pipeline generates an ID and routes
// the invoice geographically when they are absent.
type AnalyzeInvoiceRequest struct {
	InvoiceID   string `json:"invoiceId"`
	Region      string `json:"region"`
	InvoiceText string `json:"invoiceText" binding:"required"`
}
