package dto

import "github.com/fxpilot/invoice_chat_app/internal/core/domain"

// AlertListResponse pages through stored fraud alerts, newest first.
type AlertListResponse struct {
	Alerts    []domain.FraudAlert `json:"alerts"`
	NextToken string              `json:"nextToken,omitempty"`
}

// RegistryResetResponse reports what a registry reset removed.
type RegistryResetResponse struct {
	InvoicesCleared int `json:"invoicesCleared"`
	AlertsCleared   int `json:"alertsCleared"`
}
