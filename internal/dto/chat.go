package dto

import "github.com/fxpilot/invoice_chat_app/internal/core/domain"

// ChatRequest is one message typed into the widget.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant reply returned to the widget.
type ChatResponse struct {
	Intent     domain.Intent            `json:"intent"`
	Reply      string                   `json:"reply"`
	Conversion *domain.ConversionResult `json:"conversion,omitempty"`
	Analysis   *domain.InvoiceAnalysis  `json:"analysis,omitempty"`
}

// ToChatResponse converts a domain.ChatResponse to its DTO.
func ToChatResponse(resp *domain.ChatResponse) ChatResponse {
	return ChatResponse{
		Intent:     resp.Intent,
		Reply:      resp.Reply,
		Conversion: resp.Conversion,
		Analysis:   resp.Analysis,
	}
}
