package utils

import (
	"testing"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	eur := domain.Currency{CurrencyCode: "EUR", Symbol: "€", Precision: 2}
	jpy := domain.Currency{CurrencyCode: "JPY", Symbol: "¥", Precision: 0}

	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency domain.Currency
		want     string
	}{
		{
			name:     "two decimal currency with grouping",
			amount:   decimal.NewFromFloat(1234.5),
			currency: eur,
			want:     "€1,234.50",
		},
		{
			name:     "zero decimal currency with grouping",
			amount:   decimal.NewFromInt(50000),
			currency: jpy,
			want:     "¥50,000",
		},
		{
			name:     "small amount without grouping",
			amount:   decimal.NewFromFloat(999.99),
			currency: eur,
			want:     "€999.99",
		},
		{
			name:     "rounds half up at display precision",
			amount:   decimal.NewFromFloat(12.345),
			currency: eur,
			want:     "€12.35",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWithCurrencyPrecision(tt.amount, tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "59,000.00", FormatGrouped(decimal.NewFromInt(59000), 2))
	assert.Equal(t, "1,456.78", FormatGrouped(decimal.NewFromFloat(1456.78), 2))
	assert.Equal(t, "0.00", FormatGrouped(decimal.Zero, 2))
	assert.Equal(t, "1,000,000", FormatGrouped(decimal.NewFromInt(1000000), 0))
}

func TestFormatGrouped_KeepsDigitsBeyondFloat64Precision(t *testing.T) {
	// 2^53+1 has no exact float64 representation; the display string must
	// still carry the decimal's exact digits.
	assert.Equal(t, "9,007,199,254,740,993.25",
		FormatGrouped(decimal.RequireFromString("9007199254740993.25"), 2))

	// Integer part wider than uint64.
	assert.Equal(t, "123,456,789,012,345,678,901,234.50",
		FormatGrouped(decimal.RequireFromString("123456789012345678901234.5"), 2))
}
