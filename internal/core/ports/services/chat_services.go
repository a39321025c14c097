package services

import (
	"context"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
)

// ResponderSvc classifies chat messages and produces assistant replies.
type ResponderSvc interface {
	// Classify returns the intent for a message, checking the intent rules
	// in priority order with first match winning.
	Classify(ctx context.Context, message string) domain.Intent

	// Respond classifies the message and dispatches to the matching response
	// generator. The InvoiceContent path runs the full analysis pipeline and
	// attaches its structured payload.
	Respond(ctx context.Context, message string) (*domain.ChatResponse, error)
}
