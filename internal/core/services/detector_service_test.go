package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
)

type DetectorServiceTestSuite struct {
	suite.Suite
	service portssvc.DetectorSvc
}

func (suite *DetectorServiceTestSuite) SetupTest() {
	suite.service = services.NewDetectorService()
}

func (suite *DetectorServiceTestSuite) TestDetect_SingleAmounts() {
	testCases := []struct {
		name         string
		text         string
		currencyCode string
		amount       string
	}{
		{"euro with thousands and decimals", "Total: €1,234.56", "EUR", "1234.56"},
		{"pound", "Pay £500 now", "GBP", "500"},
		{"rupee", "Amount ₹2,50,000", "INR", "250000"},
		{"canadian dollar literal", "Quote: C$75.50", "CAD", "75.5"},
		{"yen integer only", "¥50000", "JPY", "50000"},
		{"plain dollar", "Invoice total: $999.99", "USD", "999.99"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result := suite.service.DetectCurrencyAndAmount(context.Background(), tc.text)

			suite.True(result.Detected())
			suite.Equal(tc.currencyCode, result.CurrencyCode)
			suite.Equal(tc.amount, result.Amount.String())
		})
	}
}

func (suite *DetectorServiceTestSuite) TestDetect_LargestAmountWins() {
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "Subtotal €1,234.56 and tax $999.99")

	suite.True(result.Detected())
	suite.Equal("EUR", result.CurrencyCode)
	suite.Equal("€1,234.56", result.RawMatch)
	suite.Equal("1234.56", result.Amount.String())
}

func (suite *DetectorServiceTestSuite) TestDetect_LargestWinsRegardlessOfPosition() {
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "Fees $2,500.10 on top of €45")

	suite.Equal("USD", result.CurrencyCode)
	suite.Equal("2500.1", result.Amount.String())
}

func (suite *DetectorServiceTestSuite) TestDetect_EqualAmountsKeepEarlierRule() {
	// Rule order, not text order, decides between equal largest amounts.
	for _, text := range []string{"€100 and $100", "$100 and €100"} {
		result := suite.service.DetectCurrencyAndAmount(context.Background(), text)

		suite.Equal("EUR", result.CurrencyCode, text)
		suite.Equal("€100", result.RawMatch, text)
		suite.Equal("100", result.Amount.String(), text)
	}
}

func (suite *DetectorServiceTestSuite) TestDetect_MultipleMatchesSameCurrency() {
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "Subtotal: $400.00 Tax: $50.00 Total: $450.00")

	suite.Equal("USD", result.CurrencyCode)
	suite.Equal("450", result.Amount.String())
}

func (suite *DetectorServiceTestSuite) TestDetect_CanadianDollarNotDoubleCounted() {
	// The C$ span must not also match the generic $ rule.
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "C$85 versus $80")

	suite.Equal("CAD", result.CurrencyCode)
	suite.Equal("85", result.Amount.String())
}

func (suite *DetectorServiceTestSuite) TestDetect_NoDigitsMeansNoMatch() {
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "no digits here")

	suite.False(result.Detected())
	suite.Empty(result.CurrencyCode)
	suite.True(result.Amount.IsZero())
}

func (suite *DetectorServiceTestSuite) TestDetect_SymbolWithoutTrailingDigit() {
	// The digit must immediately follow the symbol.
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "price in € is 100")

	suite.False(result.Detected())
}

func (suite *DetectorServiceTestSuite) TestDetect_YenIgnoresDecimalPart() {
	result := suite.service.DetectCurrencyAndAmount(context.Background(), "¥50,000.25")

	suite.Equal("JPY", result.CurrencyCode)
	suite.Equal("50000", result.Amount.String())
}

func TestDetectorService(t *testing.T) {
	suite.Run(t, new(DetectorServiceTestSuite))
}
