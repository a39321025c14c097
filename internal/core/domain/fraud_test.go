package domain_test

import (
	"testing"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestActionForConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       domain.RecommendedAction
	}{
		{
			name:       "above block threshold",
			confidence: 0.95,
			want:       domain.ActionBlockPayments,
		},
		{
			name:       "exactly at block threshold falls to hold",
			confidence: 0.90,
			want:       domain.ActionHoldForReview,
		},
		{
			name:       "between hold and block",
			confidence: 0.88,
			want:       domain.ActionHoldForReview,
		},
		{
			name:       "between review and hold",
			confidence: 0.80,
			want:       domain.ActionManualReview,
		},
		{
			name:       "exactly at review threshold falls to monitor",
			confidence: 0.75,
			want:       domain.ActionMonitor,
		},
		{
			name:       "low confidence",
			confidence: 0.30,
			want:       domain.ActionMonitor,
		},
		{
			name:       "zero confidence",
			confidence: 0.0,
			want:       domain.ActionMonitor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ActionForConfidence(tt.confidence)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectionResult_Detected(t *testing.T) {
	tests := []struct {
		name   string
		result domain.DetectionResult
		want   bool
	}{
		{
			name: "currency matched",
			result: domain.DetectionResult{
				CurrencyCode: "EUR",
				Symbol:       "€",
				Amount:       decimal.NewFromFloat(1234.56),
			},
			want: true,
		},
		{
			name:   "nothing matched",
			result: domain.DetectionResult{Amount: decimal.Zero},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Detected())
		})
	}
}
