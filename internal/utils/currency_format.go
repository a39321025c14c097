package utils

import (
	"strconv"
	"strings"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Shared printer; message.Printer is safe for concurrent use.
var enPrinter = message.NewPrinter(language.English)

// FormatWithCurrencyPrecision formats an amount at the currency's display
// precision with grouped thousands, prefixed with the currency symbol.
// Example: amount 1234.5 with EUR (precision 2) returns "€1,234.50"
// Example: amount 50000 with JPY (precision 0) returns "¥50,000"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + FormatGrouped(amount, currency.Precision)
}

// FormatGrouped formats an amount with comma thousands separators and exactly
// the given number of fraction digits. It works from the decimal's own digit
// string, never a float64, so amounts beyond float64 precision keep every
// digit.
func FormatGrouped(amount decimal.Decimal, precision int) string {
	fixed := amount.StringFixed(int32(precision))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var grouped string
	if n, err := strconv.ParseUint(intPart, 10, 64); err == nil {
		grouped = enPrinter.Sprintf("%v", number.Decimal(n))
	} else {
		// Integer parts beyond uint64 exceed what the locale printer
		// accepts as an operand.
		grouped = groupDigits(intPart)
	}

	if hasFrac {
		return sign + grouped + "." + fracPart
	}
	return sign + grouped
}

// groupDigits inserts a comma before every trailing group of three digits.
func groupDigits(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
